package device

import (
	"github.com/spf13/cobra"
)

// DeviceCmd - родительская команда для операций с устройствами
var DeviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Управление устройствами",
	Long:  `Регистрация устройств для доступа к API синхронизации.`,
}
