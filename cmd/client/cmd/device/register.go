// cmd/client/cmd/device/register.go
package device

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"snipmark/cmd/client/cmd/types"
	"snipmark/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register <имя>",
	Short: "Зарегистрировать это устройство",
	Long: `Регистрирует устройство на сервере и сохраняет выданный ключ локально.

Имя устройства глобально уникально. Ключ показывается сервером один раз;
при потере файла с ключом устройство нужно зарегистрировать заново.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		name := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		key, err := app.RegisterDevice(ctx, name)
		if err != nil {
			return fmt.Errorf("ошибка регистрации устройства: %w", err)
		}

		color.Green("✅ Устройство %q зарегистрировано", name)
		fmt.Printf("Ключ устройства: %s\n", key)
		fmt.Println("Ключ сохранен локально и будет использоваться автоматически.")

		return nil
	},
}
