// cmd/client/cmd/init.go
package cmd

import (
	"snipmark/cmd/client/cmd/auth"
	"snipmark/cmd/client/cmd/device"
	"snipmark/cmd/client/cmd/pull"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)

	rootCmd.AddCommand(device.DeviceCmd)
	device.DeviceCmd.AddCommand(device.RegisterCmd)

	rootCmd.AddCommand(pull.PullCmd)
	rootCmd.AddCommand(pull.DocsCmd)
	pull.DocsCmd.AddCommand(pull.ListCmd)
	pull.DocsCmd.AddCommand(pull.ShowCmd)
}
