package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/store"
)

var (
	profileAge    int
	profileGender string
	profileHeight float64
	profileWeight float64
	profileLevel  string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or update the account profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the account profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		user, err := st.GetUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d not found", userID)
		}
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
		if user.Age != nil {
			fmt.Printf("  age:     %d\n", *user.Age)
		}
		if user.Height != nil {
			fmt.Printf("  height:  %.1f cm\n", *user.Height)
		}
		if user.Weight != nil {
			fmt.Printf("  weight:  %.1f kg\n", *user.Weight)
		}
		if user.FitnessLevel != nil {
			fmt.Printf("  level:   %s\n", *user.FitnessLevel)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update one or more profile fields. Only flags you pass change.

Examples:
  fittrack profile set --age 30 --height 178 --user 1
  fittrack profile set --level intermediate --user 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		var upd store.ProfileUpdate
		if cmd.Flags().Changed("age") {
			upd.Age = &profileAge
		}
		if cmd.Flags().Changed("gender") {
			upd.Gender = &profileGender
		}
		if cmd.Flags().Changed("height") {
			upd.Height = &profileHeight
		}
		if cmd.Flags().Changed("weight") {
			upd.Weight = &profileWeight
		}
		if cmd.Flags().Changed("level") {
			upd.FitnessLevel = &profileLevel
		}
		if err := st.UpdateProfile(cmd.Context(), userID, upd); err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().StringVar(&profileLevel, "level", "", "fitness level")
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
