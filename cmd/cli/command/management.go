package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// management.go holds the read-only housing views and the notice downloads.

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total occupancy against total capacity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		summary, err := httpClient.Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get summary: %w", err)
		}

		fmt.Printf("Occupied beds: %d\n", summary.TotalOccupancy)
		fmt.Printf("Total beds: %d\n", summary.TotalCapacity)
		if summary.TotalCapacity > 0 {
			fmt.Printf("Load: %.0f%%\n", float64(summary.TotalOccupancy)*100/float64(summary.TotalCapacity))
		}
		return nil
	},
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Room views",
}

var availableRoomsCmd = &cobra.Command{
	Use:   "available",
	Short: "List rooms with at least one free bed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		rooms, err := httpClient.AvailableRooms(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list available rooms: %w", err)
		}
		if len(rooms) == 0 {
			color.Yellow("No free beds left.")
			return nil
		}

		for _, r := range rooms {
			fmt.Printf("Room %d (Block: %s, Floor: %d) %d/%d\n",
				r.RoomNumber, r.BlockName, r.FloorNumber, r.CurrentOccupancy, r.MaxCapacity)
		}
		return nil
	},
}

var residentsCmd = &cobra.Command{
	Use:   "residents",
	Short: "Resident views",
}

var unassignedResidentsCmd = &cobra.Command{
	Use:   "unassigned",
	Short: "List residents without a room",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		residents, err := httpClient.ResidentsWithoutRoom(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list residents: %w", err)
		}
		if len(residents) == 0 {
			fmt.Println("Every resident has a room.")
			return nil
		}

		for _, r := range residents {
			fmt.Printf("%d\t%s\t%s\n", r.ID, r.FullName, r.Email)
		}
		return nil
	},
}

var noticeCmd = &cobra.Command{
	Use:   "notice",
	Short: "Download resident notices",
}

var checkInNoticeCmd = &cobra.Command{
	Use:   "check-in [resident-id]",
	Short: "Download the check-in notice of a resident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		residentID, err := parseIDArg(args[0], "resident ID")
		if err != nil {
			return err
		}
		return saveNotice(cmd, func(f *os.File) (string, error) {
			httpClient, err := GetAuthenticatedClient()
			if err != nil {
				return "", err
			}
			return httpClient.CheckInNotice(cmd.Context(), residentID, f)
		})
	},
}

var relocationNoticeCmd = &cobra.Command{
	Use:   "relocation [resident-id]",
	Short: "Download the relocation notice of a resident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		residentID, err := parseIDArg(args[0], "resident ID")
		if err != nil {
			return err
		}
		oldRoomID, _ := cmd.Flags().GetInt64("old-room")
		return saveNotice(cmd, func(f *os.File) (string, error) {
			httpClient, err := GetAuthenticatedClient()
			if err != nil {
				return "", err
			}
			return httpClient.RelocationNotice(cmd.Context(), residentID, oldRoomID, f)
		})
	},
}

// saveNotice downloads into a temp file in the output directory and renames
// it to the server-suggested name once complete.
func saveNotice(cmd *cobra.Command, fetch func(f *os.File) (string, error)) error {
	outDir, _ := cmd.Flags().GetString("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(outDir, "notice-*.part")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	name, fetchErr := fetch(tmp)
	if err := tmp.Close(); err != nil && fetchErr == nil {
		fetchErr = err
	}
	if fetchErr != nil {
		return fmt.Errorf("failed to download notice: %w", fetchErr)
	}
	if name == "" {
		name = "notice.pdf"
	}

	target := filepath.Join(outDir, name)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return err
	}
	color.Green("✓ Saved %s", target)
	return nil
}

func init() {
	roomsCmd.AddCommand(availableRoomsCmd)
	residentsCmd.AddCommand(unassignedResidentsCmd)
	noticeCmd.AddCommand(checkInNoticeCmd)
	noticeCmd.AddCommand(relocationNoticeCmd)

	noticeCmd.PersistentFlags().StringP("out", "o", ".", "Directory to save the notice in")
	relocationNoticeCmd.Flags().Int64("old-room", 0, "ID of the room the resident moved out of")
	relocationNoticeCmd.MarkFlagRequired("old-room")
}
