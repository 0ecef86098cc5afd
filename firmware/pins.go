//go:build tinygo

package main

import "machine"

const (
	// Build-time toggle for the learned RSSI estimator. When false the
	// firmware never consults the model even if it loaded cleanly.
	USE_MODEL = true

	// Telemetry cadence in milliseconds
	TELEMETRY_INTERVAL_MS = 1000

	// RGB LED pins (common anode - driven through the rgb driver which
	// hides the inversion)
	PIN_LED_R = machine.LED_RED
	PIN_LED_G = machine.LED_GREEN
	PIN_LED_B = machine.LED_BLUE

	// Status indicator for LED=ON/LED=OFF
	PIN_STATUS_LED = machine.LED

	// Serial configuration
	// Worst-case line is a PROCESSED record: ~230 bytes of JSON.
	// 50 records/sec * 230 bytes = 11,500 bytes/sec; UART 8N1 at 115200
	// moves 11,520 bytes/sec, so the inbound rate limit of 50/sec is also
	// the outbound ceiling.
	UART_BAUD_RATE = 115200
)
