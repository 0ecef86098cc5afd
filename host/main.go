package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/itohio/ltesense/pkg/config"
	"github.com/itohio/ltesense/pkg/device"
)

var (
	cfg *config.Config

	configFlag string
	portFlag   string
	mockFlag   bool
)

func main() {
	root := &cobra.Command{
		Use:           "ltesense",
		Short:         "Host-side tools for the ltesense LTE sensing peripheral",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFlag)
			if err != nil {
				return err
			}
			if portFlag != "" {
				cfg.Serial.Port = portFlag
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "config.yaml", "Configuration file path")
	root.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
	root.PersistentFlags().BoolVar(&mockFlag, "mock", false, "Use mocked device instead of serial port")

	root.AddCommand(newPortsCmd(), newLEDCmd(), newRGBCmd(), newMonitorCmd(), newStreamCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// openDevice creates the configured device and connects it.
func openDevice() (device.Device, error) {
	var dev device.Device
	if mockFlag {
		dev = device.NewMock(&cfg.Mock)
	} else {
		dev = device.New(cfg.Serial.Port, cfg.Serial.Baud, 0)
	}
	if err := dev.Connect(); err != nil {
		return nil, err
	}
	return dev, nil
}
