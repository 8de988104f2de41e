package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

// Environment variables consulted when the matching flag is empty.
const (
	EnvIdentity = "THREEMA_GATEWAY_ID"
	EnvSecret   = "THREEMA_GATEWAY_SECRET"
	EnvBaseURL  = "THREEMA_GATEWAY_URL"

	defaultEnvFile = ".env"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// app carries the streams and global flags shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	from    string
	secret  string
	baseURL string
	envFile string
	timeout time.Duration
	verbose bool

	logger zerolog.Logger
}

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree reading from stdin and writing to
// stdout and stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "threema-gateway",
		Short:         "Send and encrypt Threema Gateway messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.from, "from", "", "API identity, e.g. *MYAPIID (env "+EnvIdentity+")")
	pf.StringVar(&a.secret, "secret", "", "API secret (env "+EnvSecret+")")
	pf.StringVar(&a.baseURL, "url", "", "gateway base URL (env "+EnvBaseURL+")")
	pf.StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default ./.env if present)")
	pf.DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default 30s)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		generateCmd(a),
		deriveCmd(a),
		encryptCmd(a),
		decryptCmd(a),
		hashCmd(a),
		sendSimpleCmd(a),
		sendE2ECmd(a),
		lookupCmd(a),
		capabilitiesCmd(a),
		creditsCmd(a),
		versionCmd(a),
	)
	return root
}

func (a *app) setup() error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: true, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return a.loadEnv()
}

// loadEnv reads --env-file, or ./.env when it exists. Variables already set
// in the process environment win.
func (a *app) loadEnv() error {
	path := a.envFile
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	a.logger.Debug().Str("path", path).Msg("loaded env file")
	return nil
}

// client builds a gateway client from flags and environment.
func (a *app) client() (*gateway.Client, error) {
	from := firstNonEmpty(a.from, os.Getenv(EnvIdentity))
	secret := firstNonEmpty(a.secret, os.Getenv(EnvSecret))
	baseURL := firstNonEmpty(a.baseURL, os.Getenv(EnvBaseURL), gateway.DefaultBaseURL)

	if from == "" {
		return nil, fmt.Errorf("%w: set --from or %s", gateway.ErrMissingIdentity, EnvIdentity)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: set --secret or %s", gateway.ErrMissingSecret, EnvSecret)
	}

	return gateway.New(from, secret,
		gateway.WithBaseURL(baseURL),
		gateway.WithTimeout(a.timeout),
		gateway.WithLogger(a.logger),
		gateway.WithUserAgent(userAgent()),
	)
}

// readText reads the message text from stdin without its trailing newline.
func (a *app) readText() (string, error) {
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", errors.New("no message text on stdin")
	}
	return text, nil
}

func (a *app) println(s string) error {
	_, err := fmt.Fprintln(a.stdout, s)
	return err
}

func userAgent() string {
	return "threema-gateway-go/" + Version
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
