package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avoyan/quittrack/internal/config"
	"github.com/avoyan/quittrack/internal/tracker"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive settings wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

var currencyChoices = []string{"$", "€", "£", "AMD", "RON"}

func runSetup(_ *cobra.Command, _ []string) error {
	now := time.Now()
	set := loadSettings(now)

	quitDate := set.QuitDate.Format(tracker.DayFormat)
	price := strconv.FormatFloat(set.PricePerPack, 'f', -1, 64)
	cigs := strconv.Itoa(set.CigsPerPack)
	baseline := strconv.Itoa(set.BaselinePerDay)
	currency := set.Currency
	notify := set.NotificationsEnabled

	choices := currencyChoices
	if !contains(choices, currency) {
		choices = append(append([]string{}, choices...), currency)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quit date").
				Description("The day you quit (YYYY-MM-DD). Streak and savings ignore earlier dates.").
				Value(&quitDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Price per pack").
				Value(&price).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Cigarettes per pack").
				Value(&cigs).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Baseline cigarettes/day").
				Description("Your pre-quit daily habit, used as the savings reference.").
				Value(&baseline).
				Validate(validateNonNegativeInt),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(choices...)...).
				Value(&currency),
			huh.NewConfirm().
				Title("Show a motivational quote at startup?").
				Value(&notify),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n  Setup canceled, nothing saved.")
			return nil
		}
		return err
	}

	// The field validators already vetted the raw input.
	draft := config.Settings{
		Currency:             currency,
		NotificationsEnabled: notify,
	}
	draft.QuitDate, _ = time.Parse(tracker.DayFormat, strings.TrimSpace(quitDate))
	draft.PricePerPack, _ = strconv.ParseFloat(strings.TrimSpace(price), 64)
	draft.CigsPerPack, _ = strconv.Atoi(strings.TrimSpace(cigs))
	draft.BaselinePerDay, _ = strconv.Atoi(strings.TrimSpace(baseline))

	if err := config.Save(config.Path(), draft); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `quittrack setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(tracker.DayFormat, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return errors.New("must be a number greater than zero")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("must be a whole number greater than zero")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return errors.New("must be a whole number, zero or more")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
