package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/server"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

func main() {
	var (
		vimOnly    bool
		neovimOnly bool
		vimruntime string
		logPath    string
	)

	rootCmd := &cobra.Command{
		Use:   "hjkls",
		Short: "Language server for Vim script",
		Long: `hjkls is an LSP server for Vim script. It communicates via
stdin/stdout using the Language Server Protocol.`,
		Version:      server.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logPath)
			logging.Logger.Info("starting hjkls", "version", server.Version)

			mode := server.Both
			if vimOnly {
				mode = server.VimOnly
			} else if neovimOnly {
				mode = server.NeovimOnly
			}

			// --vimruntime wins over $VIMRUNTIME; either must exist.
			runtime := vimruntime
			if runtime == "" {
				runtime = os.Getenv("VIMRUNTIME")
			}
			if runtime != "" && !util.IsValidPath(runtime) {
				runtime = ""
			}

			var s server.Server
			s.Init(transport.Stdin, server.Options{
				Mode:       mode,
				VimRuntime: runtime,
			})
			return s.Run(context.Background())
		},
	}

	rootCmd.Flags().BoolP("version", "V", false, "show version information")
	rootCmd.Flags().BoolVar(&vimOnly, "vim-only", false, "show only Vim-compatible entries in completion")
	rootCmd.Flags().BoolVar(&neovimOnly, "neovim-only", false, "show only Neovim-compatible entries in completion")
	rootCmd.Flags().StringVar(&vimruntime, "vimruntime", "", "override $VIMRUNTIME path for autoload resolution")
	rootCmd.Flags().StringVar(&logPath, "log", "", "enable debug logging to the specified file")
	rootCmd.MarkFlagsMutuallyExclusive("vim-only", "neovim-only")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
