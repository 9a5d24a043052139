package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review, most overdue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		now := time.Now()
		items := env.progress.DueItems(env.catalog, now)
		if len(items) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		for _, it := range items {
			rec, _ := env.progress.Get(it.ID)
			overdue := now.Sub(rec.NextReviewAt).Round(time.Minute)
			fmt.Printf("%-20s %-15s %-10s overdue %s\n", it.Word, it.Translation, rec.Tier, overdue)
		}
		return nil
	},
}
