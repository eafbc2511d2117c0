// cmd/client/cmd/pull/docs.go
package pull

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"snipmark/cmd/client/cmd/types"
	"snipmark/internal/app/client"
)

// DocsCmd - родительская команда для работы с локальным кэшем документов
var DocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Локальный кэш документов",
	Long:  `Просмотр markdown документов, выгруженных командой pull.`,
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список закэшированных документов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		docs, err := app.ListCached()
		if err != nil {
			return fmt.Errorf("ошибка чтения кэша: %w", err)
		}

		if len(docs) == 0 {
			fmt.Println("Кэш пуст. Выполните: snipmark pull")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tURL\tВЫГРУЖЕН")
		for _, doc := range docs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				doc.SourceID, doc.Title, doc.URL, doc.PulledAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show <id источника>",
	Short: "Показать закэшированный документ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		sourceID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("некорректный ID источника: %s", args[0])
		}

		doc, err := app.GetCached(sourceID)
		if err != nil {
			return err
		}

		fmt.Print(doc.Markdown)
		return nil
	},
}
