package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Environment passed to extensions, with the values of the global flags.
const (
	EnvConfigFile = "XREF_CONFIG_FILE"
	EnvNotesPath  = "XREF_NOTES_PATH"
	EnvLogLevel   = "XREF_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external xref-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "xref-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("command", externalCmdName).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables. Unset flags leave the
	// environment alone so that the extension loads the configuration
	// like xref does.
	cmd.Env = os.Environ()
	for name, value := range map[string]string{
		EnvConfigFile: *configFile,
		EnvNotesPath:  *notesPath,
		EnvLogLevel:   *logLevel,
	} {
		if value != "" {
			cmd.Env = append(cmd.Env, name+"="+value)
		}
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
