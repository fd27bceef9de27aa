package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
)

const connectTimeout = 30 * time.Second

var errOobiUsage = errors.New("usage: wallet oobi <identifier> [alias]")

// printOobi connects once, prints the identifier's OOBI with a terminal QR
// code and copies it to the clipboard.
func printOobi(ctx context.Context, w *wallet, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errOobiUsage
	}
	params := service.OobiParams{}
	if len(args) > 1 {
		params.Alias = args[1]
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := w.agent.Connect(connectCtx, time.Second); err != nil {
		return fmt.Errorf("connect to keria: %w", err)
	}

	oobi, err := w.services.Connections.GetOobi(ctx, args[0], params)
	if err != nil {
		return err
	}

	qr, err := qrcode.New(oobi, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("render qr code: %w", err)
	}
	fmt.Println(qr.ToSmallString(false))
	fmt.Println(oobi)

	if err = clipboard.WriteAll(oobi); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable, oobi printed only")
		return nil
	}
	log.Info().Msg("oobi copied to clipboard")
	return nil
}
