package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/itohio/ltesense/pkg/device"
	"github.com/itohio/ltesense/pkg/stats"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := device.Ports()
			if err != nil {
				return err
			}
			for _, p := range ports {
				fmt.Println(p.Name)
			}
			return nil
		},
	}
}

func newLEDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "led <on|off>",
		Short: "Switch the status LED",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			dev, err := openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			if err := dev.SetLED(on); err != nil {
				return err
			}
			return waitAck(dev, 2*time.Second)
		},
	}
}

func newRGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <r> <g> <b>",
		Short: "Set the RGB LED color (0-255 per channel)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]int
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid channel value %q: %w", a, err)
				}
				vals[i] = v
			}

			dev, err := openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			if err := dev.SetRGB(vals[0], vals[1], vals[2]); err != nil {
				return err
			}
			return waitAck(dev, 2*time.Second)
		},
	}
}

// waitAck prints the next protocol line (the acknowledgement or error).
func waitAck(dev device.Device, timeout time.Duration) error {
	select {
	case line, ok := <-dev.Events():
		if !ok {
			return fmt.Errorf("device closed")
		}
		fmt.Println(line)
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("no reply within %v", timeout)
	}
}

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Print telemetry, processed records and protocol events",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)

			for {
				select {
				case <-interrupt:
					return nil
				case line, ok := <-dev.Events():
					if !ok {
						return nil
					}
					fmt.Println(line)
				case pkt, ok := <-dev.Packets():
					if !ok {
						return nil
					}
					printPacket(pkt)
				case rec, ok := <-dev.Records():
					if !ok {
						return nil
					}
					fmt.Printf("#%d ts=%d rssi=%d calc=%v anomaly=%v\n",
						rec.RecordNum, rec.Timestamp, rec.RSSI, rec.RSSICalculated, rec.IsAnomaly)
				}
			}
		},
	}
}

func printPacket(pkt device.SensorPacket) {
	line := pkt.ReceivedAt.Format(time.RFC3339)
	if pkt.Temperature != nil {
		line += fmt.Sprintf(" T=%.1fC", *pkt.Temperature)
	}
	if pkt.Humidity != nil {
		line += fmt.Sprintf(" H=%.1f%%", *pkt.Humidity)
	}
	if pkt.Pressure != nil {
		line += fmt.Sprintf(" P=%.1fkPa", *pkt.Pressure)
	}
	if pkt.Proximity != nil {
		line += fmt.Sprintf(" prox=%d", *pkt.Proximity)
	}
	if pkt.Accel != nil {
		line += fmt.Sprintf(" acc=(%.2f,%.2f,%.2f)", pkt.Accel.X, pkt.Accel.Y, pkt.Accel.Z)
	}
	fmt.Println(line)
}

func newStreamCmd() *cobra.Command {
	var rate int

	cmd := &cobra.Command{
		Use:   "stream [csv]",
		Short: "Replay a measurement CSV to the device and collect results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Stream.CSVPath
			if len(args) == 1 {
				path = args[0]
			}
			if rate == 0 {
				rate = cfg.Stream.RatePerSec
			}
			// Firmware-side outbound ceiling, see firmware/pins.go
			if rate < 1 {
				rate = 1
			}
			if rate > 50 {
				rate = 50
			}

			records, err := readRecords(path)
			if err != nil {
				return err
			}

			dev, err := openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			collector := stats.New(cfg.Stats.WindowSize)
			collector.Process(dev.Records())

			if err := dev.StartStream(); err != nil {
				return err
			}

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			ticker := time.NewTicker(time.Second / time.Duration(rate))
			defer ticker.Stop()

			sent := 0
		replay:
			for _, rec := range records {
				select {
				case <-interrupt:
					break replay
				case <-ticker.C:
					if err := dev.Send(rec); err != nil {
						return err
					}
					sent++
				}
			}

			// Give the device time to flush the tail of the stream.
			time.Sleep(200 * time.Millisecond)
			if err := dev.StopStream(); err != nil {
				return err
			}

			s := collector.Summary()
			fmt.Printf("sent %d records, received %d\n", sent, s.Total)
			if s.Total > 0 {
				fmt.Printf("avg rsrp=%.1f rsrq=%.1f rssi=%.1f sinr=%.1f\n",
					s.AvgRSRP, s.AvgRSRQ, s.AvgRSSI, s.AvgSINR)
				fmt.Printf("anomalies=%d (%.1f%%) calculated_rssi=%d (%.1f%%)\n",
					s.Anomalies, s.AnomalyRate*100, s.Calculated, s.CalculatedRate*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rate, "rate", 0, "Records per second (1-50, default from config)")
	return cmd
}
