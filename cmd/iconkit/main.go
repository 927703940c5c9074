package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Mavwarf/iconkit/internal/console"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// cliOpts holds global flags shared by all commands.
type cliOpts struct {
	ConfigPath string
	Root       string
	Source     string
	Verbose    bool
	Args       []string // positional arguments after flag removal
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'iconkit help' for usage.\n")
		os.Exit(1)
	}
	os.Exit(dispatch(opts, console.New(opts.Verbose)))
}

// parseArgs strips global flags from args. Flags may appear anywhere.
func parseArgs(args []string) (cliOpts, error) {
	var opts cliOpts
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c", "--root", "-r", "--source", "-s":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", args[i])
			}
			switch args[i] {
			case "--config", "-c":
				opts.ConfigPath = args[i+1]
			case "--root", "-r":
				opts.Root = args[i+1]
			default:
				opts.Source = args[i+1]
			}
			i++
		case "--verbose":
			opts.Verbose = true
		default:
			opts.Args = append(opts.Args, args[i])
		}
	}
	return opts, nil
}

// dispatch runs the selected command and returns the process exit code.
func dispatch(opts cliOpts, p *console.Printer) int {
	cmd := "generate"
	if len(opts.Args) > 0 {
		cmd = opts.Args[0]
	}
	switch cmd {
	case "help", "-h", "--help":
		printUsage(p)
		return 0
	case "version", "-V", "--version":
		printVersion(p)
		return 0
	case "generate", "gen":
		return generateCmd(opts, p)
	case "plan":
		return planCmd(opts, p)
	case "history":
		return historyCmd(opts, p)
	default:
		p.Error(fmt.Errorf("unknown command %q", cmd))
		return 1
	}
}

func printVersion(p *console.Printer) {
	p.Info("iconkit %s (%s) %s/%s", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(p *console.Printer) {
	p.Info("iconkit %s - Generate desktop and web icons from one logo", version)
	p.Info(`
Usage:
  iconkit [options] [command]

Options:
  --config, -c <path>    Path to iconkit-config.json
  --root, -r <dir>       Project root (default: config project_root, then cwd)
  --source, -s <name>    Logo file name inside frontend/assets/icons
  --verbose              Print every written file and bundle errors

Commands:
  generate               Write all icons and compile icon.icns (default)
  plan                   List the files generate would write
  history [n]            Show the last n runs (default 10)
  history clean <days>   Keep only the last <days> days of runs
  history clear          Delete all run history
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Output (relative to the project root):
  frontend/assets/icons/icon.iconset/   icon_<s>x<s>.png and @2x renditions
  frontend/assets/icons/app-icon.png    256x256
  frontend/assets/favicon/              favicon-32x32.png, apple-touch-icon.png
  frontend/assets/icons/icon.icns       when iconutil is available

Exit codes:
  0  success (a skipped or failed icon.icns step still counts)
  1  usage or config error
  2  source logo missing
  3  source could not be decoded
  4  resize failed
  5  writing an output file failed`)
}
