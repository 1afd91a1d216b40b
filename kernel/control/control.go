//
// control.go
//
// Copyright (c) 2018-2026 Markku Rossi
//
// All rights reserved.
//

package control

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Kernel and display harness settings.
var (
	Framebuffer     string        = "espress-os.fb"
	Foreground      string        = "Yellow"
	Background      string        = "Black"
	EmulatorWidth   int           = 80
	EmulatorHeight  int           = 25
	HTTPDAddr       string        = "localhost:8100"
	HTTPDInterval   time.Duration = 100 * time.Millisecond
	HTTPDStaticRoot string        = "."
)

type ValueType int

const (
	String ValueType = iota
	Int
	Duration
)

var valueTypeNames = map[ValueType]string{
	String:   "string",
	Int:      "int",
	Duration: "duration",
}

func (t ValueType) String() string {
	name, ok := valueTypeNames[t]
	if ok {
		return name
	}
	return fmt.Sprintf("{ValueType %d}", t)
}

type Value struct {
	Name string
	Type ValueType
	Strp *string
	Intp *int
	Durp *time.Duration
}

func (v Value) String() string {
	switch v.Type {
	case String:
		return fmt.Sprintf("%s=%s", v.Name, *v.Strp)

	case Int:
		return fmt.Sprintf("%s=%d", v.Name, *v.Intp)

	case Duration:
		return fmt.Sprintf("%s=%s", v.Name, *v.Durp)

	default:
		return fmt.Sprintf("%s=?", v.Name)
	}
}

// Set parses the value from its string representation.
func (v Value) Set(value string) error {
	switch v.Type {
	case String:
		*v.Strp = value

	case Int:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: invalid %s value '%s'", v.Name, v.Type, value)
		}
		*v.Intp = i

	case Duration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid %s value '%s'", v.Name, v.Type, value)
		}
		*v.Durp = d

	default:
		return fmt.Errorf("%s: unsupported type %s", v.Name, v.Type)
	}
	return nil
}

var Values = []Value{
	Value{
		Name: "vga.framebuffer",
		Type: String,
		Strp: &Framebuffer,
	},
	Value{
		Name: "vga.foreground",
		Type: String,
		Strp: &Foreground,
	},
	Value{
		Name: "vga.background",
		Type: String,
		Strp: &Background,
	},
	Value{
		Name: "emulator.width",
		Type: Int,
		Intp: &EmulatorWidth,
	},
	Value{
		Name: "emulator.height",
		Type: Int,
		Intp: &EmulatorHeight,
	},
	Value{
		Name: "httpd.addr",
		Type: String,
		Strp: &HTTPDAddr,
	},
	Value{
		Name: "httpd.interval",
		Type: Duration,
		Durp: &HTTPDInterval,
	},
	Value{
		Name: "httpd.root",
		Type: String,
		Strp: &HTTPDStaticRoot,
	},
}

// Lookup finds the control value by its name.
func Lookup(name string) (Value, bool) {
	for _, v := range Values {
		if v.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Set sets the named control value.
func Set(name, value string) error {
	v, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown control value '%s'", name)
	}
	return v.Set(value)
}

// Load reads control values from a YAML file. The file is a mapping
// from value names to values:
//
//	vga.framebuffer: /tmp/espress-os.fb
//	emulator.width: 100
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Parse(data)
}

// Parse sets control values from YAML data.
func Parse(data []byte) error {
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("invalid control file: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}
