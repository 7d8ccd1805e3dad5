package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/osinstall/osinstall/internal/layout"
	"github.com/osinstall/osinstall/internal/store"
)

var (
	planPath       string
	bootLoaderPath string
	stateDir       string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:          "osinstall-layout",
	Short:        "Publish the disk layout description for later installation stages",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		devices, err := loadPlan(planPath)
		if err != nil {
			return err
		}
		for _, device := range devices {
			logrus.Infof("%s: %s, %d partitions", device.Path, humanize.IBytes(device.Size), len(device.Partitions))
		}

		var dir *string
		if stateDir != "" {
			dir = &stateDir
		}

		job := layout.NewFillStorageJob(devices, bootLoaderPath, store.New(dir))
		job.Run()

		for _, line := range job.Summary() {
			fmt.Println(line)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&planPath, "plan", "p", "", "partitioning plan file (TOML)")
	rootCmd.Flags().StringVarP(&bootLoaderPath, "bootloader", "b", "", "boot loader install target: a device node or a mount point; empty disables the boot loader install")
	rootCmd.Flags().StringVarP(&stateDir, "state-dir", "s", "", "directory the shared stage state is persisted in")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("plan")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
