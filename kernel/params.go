//
// params.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

//go:build unix

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/markkurossi/espress-os/kernel/control"
)

type setFlags []string

func (s *setFlags) String() string {
	return strings.Join(*s, ",")
}

func (s *setFlags) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func parseParams(args []string) error {
	fs := flag.NewFlagSet("kernel", flag.ContinueOnError)
	config := fs.String("config", "", "Control values file")
	fb := fs.String("fb", "", "Framebuffer file")
	var sets setFlags
	fs.Var(&sets, "set", "Set control value `name=value`")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(*config) > 0 {
		if err := control.Load(*config); err != nil {
			return fmt.Errorf("failed to load control file '%s': %w",
				*config, err)
		}
	}
	for _, set := range sets {
		idx := strings.IndexByte(set, '=')
		if idx < 0 {
			return fmt.Errorf("invalid control value '%s'", set)
		}
		if err := control.Set(set[:idx], set[idx+1:]); err != nil {
			return err
		}
	}
	if len(*fb) > 0 {
		control.Framebuffer = *fb
	}
	return nil
}
