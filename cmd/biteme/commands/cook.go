package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bitemeapp/biteme/internal/catalog"
	"github.com/bitemeapp/biteme/internal/cookinglog"
	"github.com/bitemeapp/biteme/internal/display"
	"github.com/bitemeapp/biteme/internal/scale"
	"github.com/bitemeapp/biteme/internal/timer"
)

var cookServings int

// cookCmd runs a recipe as a cooking session.
var cookCmd = &cobra.Command{
	Use:   "cook <recipe-id>",
	Short: "Cook a recipe step by step",
	Long: `Walk through a recipe's steps. Ingredients scale to the chosen serving
count, step placeholders resolve to ingredient names, and steps with
durations run a countdown. Completing the last step records the session
in the cooking log and offers a rating prompt.

Examples:
  biteme cook chickpea-curry
  biteme cook chickpea-curry --servings 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCook(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(cookCmd)

	cookCmd.Flags().IntVar(&cookServings, "servings", 0, "Serving count (persisted per recipe)")
}

func runCook(cmd *cobra.Command, recipeID string) error {
	ctx := cmd.Context()

	recipe, err := cat.Get(ctx, recipeID)
	if err != nil {
		return err
	}

	if cookServings > 0 {
		if err := servings.Set(ctx, recipeID, cookServings); err != nil {
			return err
		}
	}
	ratio := servings.Ratio(ctx, recipe)
	count := servings.Get(ctx, recipeID, recipe.Servings)

	sess := eng.Start(ctx, recipeID)

	fmt.Println(display.Card(recipe, display.CardContext{}))
	fmt.Printf("Serves %d\n\n", count)

	for _, group := range recipe.Ingredients {
		lines := make([]string, len(group.Items))
		for i, ing := range group.Items {
			lines[i] = scale.IngredientText(ing, ratio)
		}
		fmt.Println(display.IngredientList(group.Category, lines, nil))
		fmt.Println()
	}

	in := bufio.NewScanner(os.Stdin)
	for i, step := range recipe.Steps {
		text := catalog.ResolveStepText(step.Text)
		fmt.Println(display.Step(i, len(recipe.Steps), text))

		for _, d := range step.Durations {
			runCountdown(d.Text, time.Duration(d.Seconds)*time.Second)
		}

		if i < len(recipe.Steps)-1 {
			fmt.Print("\n[enter] next step ")
			if !in.Scan() {
				break
			}
			fmt.Println()
		}
	}

	if sess != nil {
		done, err := eng.Complete(ctx, sess.ID)
		if err != nil {
			// The session row can be gone (cleared store, second tab);
			// cooking finished either way.
			log.Warn("recording completion", zap.Error(err))
		} else if done != nil && done.CompletedAt != nil {
			fmt.Printf("\nDone in %s\n", cookinglog.FormatDuration(*done.CompletedAt-done.StartedAt))
		}
	}

	prompt, err := eng.RatingPrompt(ctx)
	if err != nil {
		return err
	}
	if prompt != nil {
		fmt.Println()
		fmt.Println(display.Prompt(prompt.Recipe.Name))
		fmt.Print("> ")
		if in.Scan() {
			if stars, err := strconv.Atoi(strings.TrimSpace(in.Text())); err == nil {
				if err := eng.Rate(ctx, prompt.Session.ID, prompt.Recipe.ID, stars); err != nil {
					return err
				}
				fmt.Println(display.Stars(stars))
				return nil
			}
		}
		if err := eng.Dismiss(ctx, prompt.Session.ID); err != nil {
			log.Warn("dismissing rating prompt", zap.Error(err))
		}
	}
	return nil
}

// runCountdown blocks until the step timer fires or the user skips it.
func runCountdown(label string, d time.Duration) {
	if d <= 0 {
		return
	}

	done := make(chan struct{})
	c := timer.New(label, d, func(string) { close(done) }, log)
	c.Start()
	defer c.Stop()

	fmt.Printf("  timer: %s (%s)\n", label, timer.FormatRemaining(d))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			fmt.Printf("  %s done\n", label)
			return
		case <-ticker.C:
			fmt.Printf("\r  %s  ", timer.FormatRemaining(c.Remaining()))
		}
	}
}
