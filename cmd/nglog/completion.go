package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for nglog.

To load completions:

Bash:
  $ source <(nglog completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ nglog completion bash > /etc/bash_completion.d/nglog
  # macOS:
  $ nglog completion bash > $(brew --prefix)/etc/bash_completion.d/nglog

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ nglog completion zsh > "${fpath[1]}/_nglog"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ nglog completion fish | source

  # To load completions for each session, execute once:
  $ nglog completion fish > ~/.config/fish/completions/nglog.fish

PowerShell:
  PS> nglog completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> nglog completion powershell > nglog.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Usage()
		}

		root := cmd.Root()
		out := cmd.OutOrStdout()

		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(out, true)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeClasses returns a completion function for class filter flags.
// It supports comma-separated values and excludes already-selected
// classes. Candidates come from the conventional class names; the flag
// still accepts free-form classes, so file completion is suppressed but
// arbitrary input remains valid.
func completeClasses(flagName string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		parts := strings.Split(toComplete, ",")
		prefix := strings.Join(parts[:len(parts)-1], ",")
		if prefix != "" {
			prefix += ","
		}
		current := strings.TrimSpace(parts[len(parts)-1])

		// Track already-used values
		used := make(map[string]struct{})
		addUsed := func(v string) {
			v = strings.TrimSpace(v)
			if v != "" {
				used[v] = struct{}{}
			}
		}

		// Values from current input
		for _, p := range parts[:len(parts)-1] {
			addUsed(p)
		}

		// Values already set on the flag (for repeated flag usage)
		if vals, err := cmd.Flags().GetStringSlice(flagName); err == nil {
			for _, v := range vals {
				addUsed(v)
			}
		}

		var candidates []string
		for _, c := range KnownClassNames() {
			if _, ok := used[c]; ok {
				continue
			}
			if strings.HasPrefix(c, current) {
				candidates = append(candidates, prefix+c)
			}
		}

		return candidates, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

// registerClassCompletion registers completion for a class filter flag.
func registerClassCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeClasses(flagName))
}
