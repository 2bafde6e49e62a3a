package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"

	"github.com/spf13/cobra"
)

// SimulationCommandHandler lists and deletes simulations on behalf of a user
type SimulationCommandHandler struct {
	env *Environment
}

// ListSimulationsCmd prints the simulations of a user, newest first
func (commandHandler *SimulationCommandHandler) ListSimulationsCmd(cmd *cobra.Command, _ []string) error {
	userID, err := requiredUser(cmd)
	if err != nil {
		return err
	}

	query := simulations.NewSimulationQuery()
	if query.Name, err = cmd.Flags().GetString("name"); err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	sims, err := commandHandler.env.Metadata.List(cmd.Context(), userID, query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tCREATED")
	for _, sim := range sims {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", sim.ID, sim.Name, sim.SimulationType, sim.DateTimeCreated.Format(time.RFC3339))
	}
	return w.Flush()
}

// DeleteSimulationCmd deletes a simulation with its mesh and model
func (commandHandler *SimulationCommandHandler) DeleteSimulationCmd(cmd *cobra.Command, args []string) error {
	userID, err := requiredUser(cmd)
	if err != nil {
		return err
	}

	if err := commandHandler.env.Metadata.DeleteByID(cmd.Context(), userID, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted simulation %s\n", args[0])
	return nil
}

// DefaultsCmd prints the default form values of a new simulation
func (commandHandler *SimulationCommandHandler) DefaultsCmd(cmd *cobra.Command, _ []string) error {
	meshFlag, err := cmd.Flags().GetString("mesh-type")
	if err != nil {
		return fmt.Errorf("invalid mesh-type flag: %w", err)
	}
	simulationFlag, err := cmd.Flags().GetString("simulation-type")
	if err != nil {
		return fmt.Errorf("invalid simulation-type flag: %w", err)
	}

	meshType, err := simulations.ParseMeshType(meshFlag)
	if err != nil {
		return err
	}
	simulationType, err := simulations.ParseSimulationType(simulationFlag)
	if err != nil {
		return err
	}

	form, err := commandHandler.env.Submission.BlankForm(meshType, simulationType)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(form.Values))
	for key := range form.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, form.Values[key])
	}
	return nil
}

// InitSimulationCommands registers the simulations command group
func InitSimulationCommands(rootCmd *cobra.Command, env *Environment) {
	handler := &SimulationCommandHandler{env: env}

	var simulationsCmd = &cobra.Command{
		Use:   "simulations",
		Short: "List, delete or preview simulations",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the simulations of a user",
		Args:  cobra.NoArgs,
		RunE:  handler.ListSimulationsCmd,
	}
	listCmd.Flags().StringP("user", "u", "", "ID of the owning user")
	listCmd.Flags().StringP("name", "", "", "Only list simulations whose name contains this text")
	listCmd.Flags().IntP("limit", "", 0, "Maximum number of simulations to list")
	simulationsCmd.AddCommand(listCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete <simulation-id>",
		Short: "Delete a simulation together with its mesh and model",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteSimulationCmd,
	}
	deleteCmd.Flags().StringP("user", "u", "", "ID of the owning user")
	simulationsCmd.AddCommand(deleteCmd)

	var defaultsCmd = &cobra.Command{
		Use:   "defaults",
		Short: "Print the default form values of a new simulation",
		Args:  cobra.NoArgs,
		RunE:  handler.DefaultsCmd,
	}
	defaultsCmd.Flags().StringP("mesh-type", "m", "1", "Mesh type, 1 global or 2 regional")
	defaultsCmd.Flags().StringP("simulation-type", "s", "1", "Simulation type, 1 forward, 2 adjoint or 3 both")
	simulationsCmd.AddCommand(defaultsCmd)

	rootCmd.AddCommand(simulationsCmd)
}
