package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/swatchdog/swatchdog/app"
	"github.com/swatchdog/swatchdog/service"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Build a project and sync its classes into running pods",
	Long: `Compile a project and push its compiled classes into one or more running pods.

The project is picked interactively, seeded with --project-query, unless
--project is given (":" is the root project). Pods are picked interactively,
seeded with --pod-prefix. Only pods in the Running phase are offered. Each pod
receives the classes in the container exposing a port named "web" unless
--container is given.

Example:
  $ swatchdog ee deploy -p swatch-tally --no-clean`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appOpts := appOptionsFromFlags(cmd)
		deployOpts, err := deployOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return runDeploy(cmd.Context(), appOpts, deployOpts)
	},
}

func init() {
	deployCmd.Flags().Bool("clean", true, "Run the clean task before compiling")
	deployCmd.Flags().Bool("no-clean", false, "Skip the clean task")
	deployCmd.Flags().StringP("pod-prefix", "p", "", "Seed the pod selector with this text")
	deployCmd.Flags().String("project", "", `Project to build, skipping project selection (":" for the root project)`)
	deployCmd.Flags().String("project-query", "", "Seed the project selector with this text")
	deployCmd.Flags().String("container", "", "Container to sync into, skipping container resolution")
	deployCmd.MarkFlagsMutuallyExclusive("clean", "no-clean")
	eeCmd.AddCommand(deployCmd)
}

func deployOptionsFromFlags(cmd *cobra.Command) (service.DeployOptions, error) {
	clean, err := cmd.Flags().GetBool("clean")
	if err != nil {
		return service.DeployOptions{}, err
	}
	if noClean, _ := cmd.Flags().GetBool("no-clean"); noClean {
		clean = false
	}
	podPrefix, _ := cmd.Flags().GetString("pod-prefix")
	project, _ := cmd.Flags().GetString("project")
	projectQuery, _ := cmd.Flags().GetString("project-query")
	container, _ := cmd.Flags().GetString("container")
	return service.DeployOptions{
		Clean:        clean,
		PodPrefix:    podPrefix,
		Project:      project,
		ProjectQuery: projectQuery,
		Container:    container,
	}, nil
}

var runDeploy = func(ctx context.Context, appOpts app.Options, deployOpts service.DeployOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	deployApp, err := app.NewDeployApp(ctx, appOpts)
	if err != nil {
		return err
	}
	return deployApp.Run(deployOpts)
}
