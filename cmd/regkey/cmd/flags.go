/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ssargent/regkey/pkg/regkey"
)

// featuresValue is a pflag.Value holding a hexadecimal feature mask
type featuresValue uint32

var _ pflag.Value = (*featuresValue)(nil)

func (f *featuresValue) String() string { return fmt.Sprintf("%08x", uint32(*f)) }

func (f *featuresValue) Set(s string) error {
	v, err := regkey.ParseFeatures(s)
	if err != nil {
		return err
	}
	*f = featuresValue(v)
	return nil
}

func (f *featuresValue) Type() string { return "hex" }
