package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		st := env.stats.Recompute(time.Now())

		fmt.Printf("User:            %s\n", env.cfg.UserID)
		fmt.Printf("Catalog items:   %d\n", st.TotalItems)
		fmt.Printf("Learned:         %d\n", st.ItemsLearned)
		fmt.Printf("Mastered:        %d\n", st.ItemsMastered)
		fmt.Printf("Due for review:  %d\n", st.ItemsDueForReview)
		return nil
	},
}
