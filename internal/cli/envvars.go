package cli

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseFlagsWithEnvVars parses the command line flags, each of which can
// also be specified as environment variable with the given prefix.
// It exits the process when an invalid flag or variable was provided.
func ParseFlagsWithEnvVars(flags *flag.FlagSet, envVarPrefix string) {
	err := parseFlagsWithEnvVars(flags, envVarPrefix, os.Args[1:], os.Environ())
	if err != nil {
		flags.Usage()
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func parseFlagsWithEnvVars(flags *flag.FlagSet, envVarPrefix string, args, environ []string) error {
	addLogLevelFlag(flags)

	env := map[string]string{}
	for _, entry := range environ {
		kv := strings.SplitN(entry, "=", 2)
		if len(kv) == 2 && strings.HasPrefix(kv[0], envVarPrefix) {
			env[kv[0]] = kv[1]
		}
	}

	var err error

	supportedEnvVars := map[string]struct{}{}
	flags.VisitAll(func(f *flag.Flag) {
		envVarName := envVarPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		f.Usage = fmt.Sprintf("%s (%s)", f.Usage, envVarName)
		supportedEnvVars[envVarName] = struct{}{}
		if envVarValue := env[envVarName]; envVarValue != "" && err == nil {
			f.DefValue = envVarValue
			if e := f.Value.Set(envVarValue); e != nil {
				err = fmt.Errorf("invalid environment variable %s value provided: %w", envVarName, e)
			}
		}
	})

	if err != nil {
		return err
	}

	err = flags.Parse(args)
	if err != nil {
		return err
	}

	for name := range env {
		if _, ok := supportedEnvVars[name]; !ok {
			return fmt.Errorf("unsupported environment variable provided: %s", name)
		}
	}

	return nil
}
