package command

import (
	"fmt"
	"strconv"
	"strings"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Rating management commands",
	Long:  `Manage resident ratings: list, view, create, reward, penalize and delete`,
}

var listRatingsCmd = &cobra.Command{
	Use:   "list",
	Short: "List every resident rating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		ratings, err := httpClient.ListRatings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list ratings: %w", err)
		}
		if len(ratings) == 0 {
			fmt.Println("No ratings found.")
			return nil
		}

		for _, r := range ratings {
			printRating(&r)
			fmt.Println(strings.Repeat("-", 40))
		}
		return nil
	},
}

var getRatingCmd = &cobra.Command{
	Use:   "get [resident-id]",
	Short: "Show the rating of a resident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		residentID, err := parseIDArg(args[0], "resident ID")
		if err != nil {
			return err
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		rating, err := httpClient.GetRating(cmd.Context(), residentID)
		if err != nil {
			return fmt.Errorf("failed to get rating: %w", err)
		}
		printRating(rating)
		return nil
	},
}

var createRatingCmd = &cobra.Command{
	Use:   "create [resident-id]",
	Short: "Create the rating of a resident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		residentID, err := parseIDArg(args[0], "resident ID")
		if err != nil {
			return err
		}
		achievement, _ := cmd.Flags().GetFloat64("achievement")
		infraction, _ := cmd.Flags().GetFloat64("infraction")

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		rating, err := httpClient.CreateRating(cmd.Context(), &dto.CreateRatingDTO{
			ResidentID:       residentID,
			AchievementScore: achievement,
			InfractionScore:  infraction,
		})
		if err != nil {
			return fmt.Errorf("failed to create rating: %w", err)
		}

		color.Green("✓ Rating created!")
		printRating(rating)
		return nil
	},
}

var rewardCmd = &cobra.Command{
	Use:       "reward [rating-id] [small|medium|large]",
	Short:     "Record an achievement on a rating",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"small", "medium", "large"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ratingID, err := parseIDArg(args[0], "rating ID")
		if err != nil {
			return err
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		rating, err := httpClient.IncreaseAchievement(cmd.Context(), ratingID, args[1])
		if err != nil {
			return fmt.Errorf("failed to record achievement: %w", err)
		}

		color.Green("✓ Achievement score increased")
		printRating(rating)
		return nil
	},
}

var penalizeCmd = &cobra.Command{
	Use:       "penalize [rating-id] [minor|moderate|major]",
	Short:     "Record an infraction on a rating",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"minor", "moderate", "major"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ratingID, err := parseIDArg(args[0], "rating ID")
		if err != nil {
			return err
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		rating, err := httpClient.DecreaseInfraction(cmd.Context(), ratingID, args[1])
		if err != nil {
			return fmt.Errorf("failed to record infraction: %w", err)
		}

		color.Yellow("✓ Infraction recorded")
		printRating(rating)
		return nil
	},
}

var deleteRatingCmd = &cobra.Command{
	Use:   "delete [rating-id]",
	Short: "Delete a rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratingID, err := parseIDArg(args[0], "rating ID")
		if err != nil {
			return err
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteRating(cmd.Context(), ratingID); err != nil {
			return fmt.Errorf("failed to delete rating: %w", err)
		}

		color.Green("✓ Rating %d deleted", ratingID)
		return nil
	},
}

func init() {
	ratingCmd.AddCommand(listRatingsCmd)
	ratingCmd.AddCommand(getRatingCmd)
	ratingCmd.AddCommand(createRatingCmd)
	ratingCmd.AddCommand(rewardCmd)
	ratingCmd.AddCommand(penalizeCmd)
	ratingCmd.AddCommand(deleteRatingCmd)

	createRatingCmd.Flags().Float64("achievement", 0, "Initial achievement score")
	createRatingCmd.Flags().Float64("infraction", 0, "Initial infraction score")
}

func parseIDArg(arg, name string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, arg)
	}
	return id, nil
}

func printRating(r *models.ResidentRating) {
	fmt.Printf("Rating ID: %d\n", r.ID)
	fmt.Printf("Resident ID: %d\n", r.ResidentID)
	fmt.Printf("Achievements: %.1f\n", r.AchievementScore)
	fmt.Printf("Infractions: %.1f\n", r.InfractionScore)
	fmt.Printf("Overall: %.1f/5\n", r.OverallScore)
}
