package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ncube/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Review recorded play sessions",
	Long:  `Commands for listing and inspecting recorded play sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Long:  `Display a list of recent play sessions with basic statistics.`,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display detailed information about a specific session including
its metadata, statistics, and full move sequence.

Use --last to show the most recent session.`,
	RunE: runSessionsShow,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start a new session with: ncube play")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-5s  %-10s  %-6s  %-6s  %s\n", "ID", "Started", "Size", "Duration", "Moves", "TPS", "Notes")
	fmt.Println("------------------------------------  --------------------  -----  ----------  ------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		moves := "-"
		tps := "-"

		if s.DurationMs != nil {
			d := time.Duration(*s.DurationMs) * time.Millisecond
			duration = formatDuration(d)
		}

		stats, statsErr := repo.Stats(s.SessionID)
		if statsErr == nil && stats.MoveCount > 0 {
			moves = fmt.Sprintf("%d", stats.MoveCount)
			if stats.TPS > 0 {
				tps = fmt.Sprintf("%.2f", stats.TPS)
			}
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-5s  %-10s  %-6s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%d", s.CubeSize, s.CubeSize),
			duration,
			moves,
			tps,
			notes,
			status,
		)
	}

	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	var sessionID string
	if showLast {
		sessions, err := sessionRepo.List(1)
		if err != nil {
			return fmt.Errorf("failed to get latest session: %w", err)
		}
		if len(sessions) == 0 {
			return fmt.Errorf("no sessions found")
		}
		sessionID = sessions[0].SessionID
	} else if len(args) > 0 {
		sessionID = args[0]
	} else {
		return fmt.Errorf("please provide a session ID or use --last")
	}

	session, err := sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	moves, err := moveRepo.GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()

	fmt.Printf("ID:      %s\n", session.SessionID)
	fmt.Printf("Cube:    %dx%dx%d\n", session.CubeSize, session.CubeSize, session.CubeSize)
	fmt.Printf("Started: %s\n", session.StartedAt.Format("2006-01-02 15:04:05"))
	if session.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", session.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if session.Notes != nil && *session.Notes != "" {
		fmt.Printf("Notes:   %s\n", *session.Notes)
	}
	fmt.Println()

	fmt.Println("Statistics")
	fmt.Println("----------")
	stats, err := sessionRepo.Stats(sessionID)
	if err == nil {
		fmt.Printf("Moves: %d\n", stats.MoveCount)
		if stats.DurationMs > 0 {
			fmt.Printf("Time:  %s\n", formatDuration(time.Duration(stats.DurationMs)*time.Millisecond))
		}
		if stats.TPS > 0 {
			fmt.Printf("TPS:   %.2f\n", stats.TPS)
		}
	}
	fmt.Println()

	if len(moves) > 0 {
		fmt.Println("Moves")
		fmt.Println("-----")

		var line string
		for i, m := range moves {
			if len(line)+len(m.Notation)+1 > 60 {
				fmt.Println(line)
				line = m.Notation
			} else if line == "" {
				line = m.Notation
			} else {
				line += " " + m.Notation
			}

			if i == len(moves)-1 && line != "" {
				fmt.Println(line)
			}
		}
	}

	return nil
}
