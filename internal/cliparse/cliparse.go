package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Person is one -p flag: a name and an optional weight or amount.
type Person struct {
	Name  string
	Value string
}

// Config holds the parsed command line.
type Config struct {
	ConfigPath string
	Mode       string
	Total      string
	People     []Person
	Export     bool
}

// Batch reports whether the split should run without the TUI.
func (c Config) Batch() bool {
	return c.Total != "" || len(c.People) > 0
}

// ParseFlags parses command line arguments. Usage output goes to out.
func ParseFlags(args []string, out io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quicksplit", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/quicksplit/config.toml)")
	fs.StringVar(&cfg.Mode, "mode", "", "Split mode: equal, shares or amounts (default from config)")
	fs.StringVar(&cfg.Total, "total", "", "Total amount to split")
	fs.BoolVar(&cfg.Export, "export", false, "Also export the result as a PNG")
	fs.Func("p", "Participant as name[:value], repeatable; value is the weight or the amount", func(s string) error {
		p, err := parsePerson(s)
		if err != nil {
			return err
		}
		cfg.People = append(cfg.People, p)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.Export && !cfg.Batch() {
		return Config{}, errors.New("-export needs -total and -p")
	}

	return cfg, nil
}

func parsePerson(s string) (Person, error) {
	name, value, _ := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, errors.New("participant name cannot be empty")
	}
	return Person{Name: name, Value: strings.TrimSpace(value)}, nil
}
