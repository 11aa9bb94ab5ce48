package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/shenikar/road_obstacles/internal/models"
	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/shenikar/road_obstacles/pkg/logger"
)

// withService открывает хранилище, выполняет fn и закрывает соединения
func withService(ctx context.Context, fn func(service.StorageService) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// stdout занят выводом команды
	log := logger.New(cfg.LogLevel, os.Stderr)

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(service.NewStorageService(store, log))
}

func newObstaclesCmd() *cobra.Command {
	obstaclesCmd := &cobra.Command{
		Use:   "obstacles",
		Short: "Manage recorded obstacles",
	}

	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded obstacles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(s service.StorageService) error {
				obstacles := s.ListObstacles(cmd.Context())
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), obstacles)
				}
				return writeObstacles(cmd.OutOrStdout(), obstacles)
			})
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	input := obstacleInput{}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new obstacle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var lat, lon *float64
			if cmd.Flags().Changed("lat") {
				lat = &input.latitude
			}
			if cmd.Flags().Changed("lon") {
				lon = &input.longitude
			}
			obstacle := models.NewObstacle(input.title, input.description, lat, lon)
			if err := validateObstacle(obstacle); err != nil {
				return err
			}

			return withService(cmd.Context(), func(s service.StorageService) error {
				if err := s.SaveObstacle(cmd.Context(), obstacle); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), obstacle.ID)
				return err
			})
		},
	}
	addCmd.Flags().StringVarP(&input.title, "title", "t", "", "obstacle title (required)")
	addCmd.Flags().StringVarP(&input.description, "description", "d", "", "obstacle description (required)")
	addCmd.Flags().Float64Var(&input.latitude, "lat", 0, "latitude in degrees")
	addCmd.Flags().Float64Var(&input.longitude, "lon", 0, "longitude in degrees")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an obstacle by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(s service.StorageService) error {
				return s.DeleteObstacle(cmd.Context(), args[0])
			})
		},
	}

	obstaclesCmd.AddCommand(listCmd, addCmd, deleteCmd)
	return obstaclesCmd
}

func newContactsCmd() *cobra.Command {
	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "Browse the emergency contact directory",
	}

	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(s service.StorageService) error {
				contacts := s.ListContacts(cmd.Context())
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), contacts)
				}
				return writeContacts(cmd.OutOrStdout(), contacts)
			})
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default contact directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), func(s service.StorageService) error {
				return s.ResetContacts(cmd.Context())
			})
		},
	}

	contactsCmd.AddCommand(listCmd, resetCmd)
	return contactsCmd
}

type obstacleInput struct {
	title       string
	description string
	latitude    float64
	longitude   float64
}

// obstacleRules повторяет проверки формы ввода
type obstacleRules struct {
	Title       string   `validate:"required,max=255"`
	Description string   `validate:"required"`
	Latitude    *float64 `validate:"required_with=Longitude,omitempty,latitude"`
	Longitude   *float64 `validate:"required_with=Latitude,omitempty,longitude"`
}

var validate = validator.New()

func validateObstacle(o *models.Obstacle) error {
	rules := obstacleRules{
		Title:       o.Title,
		Description: o.Description,
		Latitude:    o.Latitude,
		Longitude:   o.Longitude,
	}
	if err := validate.Struct(rules); err != nil {
		return fmt.Errorf("invalid obstacle: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeObstacles(w io.Writer, obstacles []*models.Obstacle) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tCREATED")
	for _, o := range obstacles {
		location := "-"
		if o.HasLocation() {
			location = fmt.Sprintf("%.6f, %.6f", *o.Latitude, *o.Longitude)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.Title, location, o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func writeContacts(w io.Writer, contacts []*models.Contact) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tROLE")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Role)
	}
	return tw.Flush()
}
