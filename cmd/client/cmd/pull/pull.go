// cmd/client/cmd/pull/pull.go
package pull

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"snipmark/cmd/client/cmd/types"
	"snipmark/internal/app/client"
)

var (
	full    bool
	exclude string
)

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Выгрузить заметки с сервера",
	Long: `Выгружает markdown документы всех источников в локальный кэш.

По умолчанию берутся только сниппеты новее отметки синхронизации, и после
успешного сохранения отметка каждого источника подтверждается. Флаг --full
перечитывает документы целиком.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.HasDeviceKey() {
			return fmt.Errorf("ключ устройства не настроен, выполните: snipmark device register <имя>")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		fmt.Println("Выгрузка заметок...")
		result, err := app.Pull(ctx, !full, exclude)
		if err != nil {
			return err
		}

		fmt.Println()
		for _, doc := range result.Pulled {
			color.Green("✓ %s", doc.Title)
		}
		if result.Skipped > 0 {
			fmt.Printf("Без изменений: %d\n", result.Skipped)
		}
		for _, pullErr := range result.Errors {
			color.Red("✗ %v", pullErr)
		}

		if len(result.Errors) > 0 {
			return fmt.Errorf("выгрузка завершена с ошибками (%d)", len(result.Errors))
		}

		color.Green("✅ Выгружено документов: %d", len(result.Pulled))
		return nil
	},
}

func init() {
	PullCmd.Flags().BoolVar(&full, "full", false, "выгрузить документы целиком, игнорируя отметку синхронизации")
	PullCmd.Flags().StringVar(&exclude, "exclude", "", "исключить секции документа: title,thumbnail")
}
