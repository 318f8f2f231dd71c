package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
	"github.com/zatekoja/wardcall/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("wardctl failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var a *app

	rootCmd := &cobra.Command{
		Use:           "wardctl",
		Short:         "Administer the nurse-call backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			observability.InitLogger(observability.LoggerOptions{
				ServiceName: cfg.OTEL.ServiceName,
				Env:         cfg.Log.Env,
				Level:       cfg.Log.Level,
				File:        cfg.Log.File,
			})
			a, err = newApp(cmd.Context(), cfg)
			return err
		},
	}

	appFn := func() *app { return a }
	rootCmd.AddCommand(
		loginCmd(appFn),
		logoutCmd(appFn),
		whoamiCmd(appFn),
		resourcesCmd(),
		listCmd(appFn),
		getCmd(appFn),
		createCmd(appFn),
		updateCmd(appFn),
		deleteCmd(appFn),
		watchCmd(appFn),
	)

	withCleanup(rootCmd, appFn)
	return rootCmd
}

// needsApp reports whether cmd talks to the backend. Help, completion and
// resources work without configuration.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "resources", "help", "wardctl":
		return false
	}
	return !(cmd.HasParent() && cmd.Parent().Name() == "completion")
}

// withCleanup releases the app after every run. cobra skips
// PersistentPostRun when RunE fails.
func withCleanup(root *cobra.Command, appFn func() *app) {
	for _, cmd := range root.Commands() {
		run := cmd.RunE
		if run == nil {
			continue
		}
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if a := appFn(); a != nil {
				a.close()
			}
			return err
		}
	}
}

func loginCmd(appFn func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("WARDCTL_PASSWORD")
			}
			session, err := appFn().auth.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", session.DisplayName)
			return nil
		},
	}
	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().String("password", "", "Account password (defaults to $WARDCTL_PASSWORD)")
	return cmd
}

func logoutCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFn().auth.Logout(cmd.Context())
		},
	}
}

func whoamiCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := appFn().auth.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

func resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List resource names accepted by list, get, create, update and delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(resourceNames(), "\n"))
			return nil
		},
	}
}

func listCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <resource>",
		Short: "Fetch every item of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			items, err := r.list(cmd.Context(), appFn().accessors)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), items)
		},
	}
}

func getCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Fetch one item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			item, err := r.get(cmd.Context(), appFn().accessors, args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
}

func createCmd(appFn func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Create an item from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			data, err := readData(cmd)
			if err != nil {
				return err
			}
			item, err := r.create(cmd.Context(), appFn().accessors, data)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
	addDataFlag(cmd)
	return cmd
}

func updateCmd(appFn func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <resource> <id>",
		Short: "Partially update an item from JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			data, err := readData(cmd)
			if err != nil {
				return err
			}
			item, err := r.update(cmd.Context(), appFn().accessors, args[1], data)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}
	addDataFlag(cmd)
	return cmd
}

func deleteCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			if err := r.remove(cmd.Context(), appFn().accessors, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", args[0], args[1])
			return nil
		},
	}
}

func watchCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream notices and navigation intents published on Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFn()
			if a.bus == nil {
				return fmt.Errorf("watch needs NOTIFY_REDIS=true")
			}
			ctx := cmd.Context()
			notices, err := a.bus.SubscribeNotices(ctx)
			if err != nil {
				return err
			}
			intents, err := a.bus.SubscribeNavigation(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for notices != nil || intents != nil {
				select {
				case <-ctx.Done():
					return nil
				case notice, ok := <-notices:
					if !ok {
						notices = nil
						continue
					}
					if err := printJSON(out, notice); err != nil {
						return err
					}
				case intent, ok := <-intents:
					if !ok {
						intents = nil
						continue
					}
					if err := printJSON(out, intent); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func addDataFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "JSON body, @file to read a file, or - for stdin")
}

// readData resolves --data, which may name a file (@path) or stdin (-)
func readData(cmd *cobra.Command) ([]byte, error) {
	data, _ := cmd.Flags().GetString("data")
	switch {
	case data == "-":
		return io.ReadAll(cmd.InOrStdin())
	case strings.HasPrefix(data, "@"):
		return os.ReadFile(strings.TrimPrefix(data, "@"))
	default:
		return []byte(data), nil
	}
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
