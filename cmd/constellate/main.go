// Command constellate is a thin CLI driver around internal/service: it
// fingerprints audio clips and estimates the time offset needed to
// align one against a previously stored reference.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/constellatefp/constellate/internal/audioio"
	"github.com/constellatefp/constellate/internal/service"
	"github.com/constellatefp/constellate/internal/visualize"
	"github.com/constellatefp/constellate/pkg/constellate"
	"github.com/constellatefp/constellate/pkg/logger"
)

const version = "0.1.0"

type addReferenceCmd struct {
	Audio string `arg:"" name:"audio" help:"Path to the reference audio file" type:"existingfile"`
}

func (c *addReferenceCmd) Run(globals *globals) error {
	svc, err := globals.newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	key, err := svc.AddReference(context.Background(), c.Audio)
	if err != nil {
		return err
	}

	fmt.Println(key)
	return nil
}

type alignCmd struct {
	Audio     string `arg:"" name:"audio" help:"Path to the audio clip to align" type:"existingfile"`
	Reference string `help:"Reference key returned by add-reference" required:""`
}

func (c *alignCmd) Run(globals *globals) error {
	svc, err := globals.newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	alignment, err := svc.Align(context.Background(), c.Audio, c.Reference)
	if err != nil {
		return err
	}

	fmt.Printf("%.6f\n", alignment.EstimatedTimeOffset)
	return nil
}

type spectrogramCmd struct {
	Audio  string `arg:"" name:"audio" help:"Path to a mono PCM WAV file" type:"existingfile"`
	Output string `arg:"" name:"output" help:"PNG file to write"`
}

func (c *spectrogramCmd) Run(globals *globals) error {
	decoded, err := audioio.DecodeWAV(c.Audio)
	if err != nil {
		return err
	}

	cfg := constellate.NewConfiguration(constellate.WithSampleRate(decoded.SampleRate))
	spec, err := constellate.BuildSpectrum(decoded.Samples, cfg)
	if err != nil {
		return err
	}

	return visualize.RenderPNG(spec, c.Output)
}

type globals struct {
	SampleRate int    `help:"Target sample rate audio is decoded/converted to" default:"16000"`
	DBPath     string `help:"Path to the fingerprint store's SQLite file" default:"constellate.sqlite3"`
	LogLevel   string `help:"Log level: DEBUG, INFO, WARN, FATAL" env:"LOG_LEVEL" default:"INFO"`
}

func (g *globals) newService() (*service.Service, error) {
	log := logger.GetLogger()
	if level, ok := parseLogLevel(g.LogLevel); ok {
		log.SetLevel(level)
	}

	return service.New(
		service.WithDBPath(g.DBPath),
		service.WithSampleRate(g.SampleRate),
		service.WithLogger(log),
	)
}

func parseLogLevel(s string) (logger.LogLevel, bool) {
	switch s {
	case "DEBUG":
		return logger.DEBUG, true
	case "INFO":
		return logger.INFO, true
	case "WARN":
		return logger.WARN, true
	case "FATAL":
		return logger.FATAL, true
	default:
		return logger.INFO, false
	}
}

var cli struct {
	globals

	AddReference addReferenceCmd `cmd:"" name:"add-reference" help:"Fingerprint an audio file and store it as a reference"`
	Align        alignCmd        `cmd:"" name:"align" help:"Estimate the time offset aligning a clip against a stored reference"`
	Spectrogram  spectrogramCmd  `cmd:"" name:"spectrogram" help:"Render a clip's log-magnitude spectrogram to a PNG, for debugging"`
	Version      bool            `help:"Show version information" short:"v"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("constellate"),
		kong.Description("Estimate the time offset between an audio clip and a stored reference."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if cli.Version {
		fmt.Printf("constellate version %s\n", version)
		os.Exit(0)
	}

	err := ctx.Run(&cli.globals)
	ctx.FatalIfErrorf(err)
}
