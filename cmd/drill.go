package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lexiz/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run a practice session in the terminal",
	Long: `Builds a session and runs it as a line-oriented quiz.
Session kinds: practice (weakest items), review (due items), new (unseen items from a category).`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("kind", "practice", "Session kind: practice, review, or new")
	drillCmd.Flags().String("category", "", "Category for new-item sessions")
	drillCmd.Flags().Int("count", 5, "Item count for new-item sessions")
}

func runDrill(cmd *cobra.Command, args []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	now := time.Now()
	builder := session.NewBuilder(env.catalog, env.progress, nil)

	var sess *session.Session
	kind, _ := cmd.Flags().GetString("kind")
	switch kind {
	case "practice":
		sess = builder.PracticeSession(now)
	case "review":
		sess = builder.ReviewSession(now)
	case "new":
		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			return fmt.Errorf("--category is required for new-item sessions")
		}
		count, _ := cmd.Flags().GetInt("count")
		sess = builder.NewItemsSession(category, count, now)
	default:
		return fmt.Errorf("unknown session kind %q", kind)
	}

	if sess.Empty() {
		fmt.Println("Nothing to drill right now.")
		return nil
	}

	runtime := session.NewRuntime(env.progress, env.stats)
	runtime.Start(sess)

	reader := bufio.NewReader(os.Stdin)
	for !sess.Done() {
		ex := sess.Current()
		started := time.Now()
		correct, err := askExercise(reader, ex)
		if err != nil {
			return err
		}
		ans := session.Answer{
			ItemID:      ex.ItemID,
			Correct:     correct,
			Kind:        ex.Kind,
			TimeSpentMs: int(time.Since(started).Milliseconds()),
		}
		if err := runtime.SubmitAnswer(ans, time.Now()); err != nil {
			return err
		}
		if ex.Kind != session.KindIntroduction {
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Printf("Not quite — the answer is %q.\n", ex.CorrectAnswer)
			}
		}
		fmt.Println()
	}

	summary, err := runtime.Complete(time.Now())
	if err != nil {
		return err
	}

	if err := env.repo.Save(cmd.Context(), env.cfg.UserID, env.progress.Snapshot()); err != nil {
		// Saving failing never blocks the learner; progress stays
		// in memory and is retried on the next save.
		env.log.Warn("saving progress failed", zap.Error(err))
	}

	printSummary(summary)
	return nil
}

// askExercise presents one exercise and reduces the learner's input to
// a boolean. Introductions are informational and always count correct.
func askExercise(reader *bufio.Reader, ex *session.Exercise) (bool, error) {
	switch ex.Kind {
	case session.KindIntroduction:
		fmt.Printf("New word: %s — %s\n", ex.Prompt, ex.CorrectAnswer)
		if ex.LocalizedPrompt != "" {
			fmt.Printf("          (%s)\n", ex.LocalizedPrompt)
		}
		fmt.Print("Press enter to continue...")
		if _, err := reader.ReadString('\n'); err != nil {
			return false, err
		}
		return true, nil

	case session.KindTranslationMatch:
		fmt.Printf("Translate: %s\n", ex.Prompt)
		for i, opt := range ex.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(ex.Options) {
			return false, nil
		}
		return ex.Options[choice-1] == ex.CorrectAnswer, nil

	case session.KindFillBlank:
		fmt.Printf("Fill in the blank: %s\n", ex.Prompt)
		if ex.LocalizedPrompt != "" {
			fmt.Printf("  (%s)\n", ex.LocalizedPrompt)
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		return strings.EqualFold(strings.TrimSpace(line), ex.CorrectAnswer), nil
	}

	return false, fmt.Errorf("unknown exercise kind %q", ex.Kind)
}

func printSummary(s *session.Summary) {
	fmt.Println("Session complete!")
	fmt.Printf("  Answered:    %d/%d\n", s.Answered, s.TotalExercises)
	fmt.Printf("  Correct:     %d (%.0f%%)\n", s.CorrectCount, s.Accuracy*100)
	fmt.Printf("  XP earned:   %d\n", s.XPEarned)
	fmt.Printf("  Best streak: %d\n", s.BestStreak)
	fmt.Printf("  Duration:    %s\n", s.Duration.Round(time.Second))
}
