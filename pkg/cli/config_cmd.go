package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration profiles",
	}
	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUseProfileCmd())
	return cmd
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the configuration profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return fmt.Errorf("no config file at %s", ConfigPath())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current profile: %s\n", cfg.CurrentProfile)
			for name, p := range cfg.Profiles {
				fmt.Fprintf(out, "\n[%s]\n", name)
				if p.Driver != "" {
					fmt.Fprintf(out, "  driver: %s\n", p.Driver)
				}
				if p.DSN != "" {
					fmt.Fprintf(out, "  dsn: %s\n", p.DSN)
				}
				if p.LogLevel != "" {
					fmt.Fprintf(out, "  log-level: %s\n", p.LogLevel)
				}
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a profile value (driver, dsn, log-level)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			name := cfg.CurrentProfile
			if profileName != "" {
				name = profileName
			}
			if name == "" {
				name = "default"
				cfg.CurrentProfile = name
			}
			p := cfg.Profiles[name]

			switch args[0] {
			case "driver":
				p.Driver = args[1]
			case "dsn":
				p.DSN = args[1]
			case "log-level":
				p.LogLevel = args[1]
			default:
				return fmt.Errorf("unknown config key %q: use driver, dsn, or log-level", args[0])
			}

			cfg.Profiles[name] = p
			return SaveUserConfig(cfg)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile-name", "", "Profile to modify (default: current profile)")
	return cmd
}

func newConfigUseProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Switch the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{Profiles: map[string]Profile{}}
			}
			if _, ok := cfg.Profiles[args[0]]; !ok {
				return fmt.Errorf("profile %q does not exist", args[0])
			}
			cfg.CurrentProfile = args[0]
			return SaveUserConfig(cfg)
		},
	}
}
