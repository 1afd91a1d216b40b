//
// commands.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/markkurossi/espress-os/kernel/control"
	"github.com/markkurossi/espress-os/kernel/vga"
	"github.com/markkurossi/espress-os/lib/render"
)

func newRootCmd() *cobra.Command {
	var config string

	root := &cobra.Command{
		Use:   "vgacat",
		Short: "Inspect the EspressOS framebuffer",
		Long: `vgacat reads the framebuffer file of the hosted kernel and shows
its contents. The framebuffer defaults to the vga.framebuffer control
value.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(config) > 0 {
				return control.Load(config)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&config, "config", "c", "",
		"control values file")

	root.AddCommand(newRenderCmd("text", "Print the framebuffer as text",
		render.Text))
	root.AddCommand(newRenderCmd("ansi", "Print the framebuffer with colors",
		render.ANSI))
	root.AddCommand(newRenderCmd("png", "Write a PNG screenshot",
		render.PNG))
	root.AddCommand(newCellsCmd())
	root.AddCommand(newWatchCmd())

	return root
}

func framebufferPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return control.Framebuffer
}

func readFrame(path string) (*vga.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return vga.DecodeFrame(data)
}

type renderFunc func(out io.Writer, src render.Source) error

func newRenderCmd(name, short string, f renderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [framebuffer]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := readFrame(framebufferPath(args))
			if err != nil {
				return err
			}
			return f(cmd.OutOrStdout(), render.FrameSource(frame))
		},
	}
}

func newCellsCmd() *cobra.Command {
	var row int

	cmd := &cobra.Command{
		Use:   "cells [framebuffer]",
		Short: "Dump the cells of a row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if row < 0 || row >= vga.Height {
				return fmt.Errorf("row %d outside 0-%d", row, vga.Height-1)
			}
			frame, err := readFrame(framebufferPath(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for col := 0; col < vga.Width; col++ {
				ch := frame.At(row, col)
				fmt.Fprintf(out, "%2d: 0x%02x 0x%02x %s\n",
					col, ch.Code, byte(ch.Attr), ch.Attr)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&row, "row", "r", vga.Height-1, "row to dump")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [framebuffer]",
		Short: "Show the framebuffer live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("invalid interval %s", interval)
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			return watch(screen, framebufferPath(args), interval)
		},
	}
	cmd.Flags().DurationVarP(&interval, "interval", "i",
		100*time.Millisecond, "refresh interval")
	return cmd
}
