package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	application "github.com/hydrologics/api-hydrodata/internal/pkg/presentation"
	"gopkg.in/yaml.v2"
)

func openOASFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	oasfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the OpenAPI specification file %s.", path)
		return nil
	}
	return oasfile
}

// serviceConfig holds the settings that a yaml file given with -config may
// override.
type serviceConfig struct {
	SiteServiceURL     string `yaml:"nwisUrl"`
	DrainageServiceURL string `yaml:"nldiUrl"`
	CacheDir           string `yaml:"cacheDir"`
	Port               string `yaml:"port"`
}

// applyConfigFile exports settings from a yaml file into the service
// environment, overriding whatever the environment already holds. Settings
// the file leaves out keep their environment value.
func applyConfigFile(ctx context.Context, path string) {
	log := logging.GetFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Msgf("failed to read config file %s: %s", path, err.Error())
	}

	cfg := serviceConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatal().Msgf("failed to parse config file %s: %s", path, err.Error())
	}

	overrides := map[string]string{
		"HYDRODATA_NWIS_URL":  cfg.SiteServiceURL,
		"HYDRODATA_NLDI_URL":  cfg.DrainageServiceURL,
		"HYDRODATA_CACHE_DIR": cfg.CacheDir,
		"SERVICE_PORT":        cfg.Port,
	}

	for name, value := range overrides {
		if value != "" {
			os.Setenv(name, value)
		}
	}
}

var openApiSpecFileName string
var configFileName string

func main() {
	serviceName := "api-hydrodata"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&openApiSpecFileName, "oas", "/opt/hydrodata/openapi.json", "An OpenAPI specification to be served on /api/openapi")
	flag.StringVar(&configFileName, "config", "", "A yaml file overriding service settings from the environment")
	flag.Parse()

	if configFileName != "" {
		applyConfigFile(ctx, configFileName)
	}

	oasfile := openOASFile(ctx, openApiSpecFileName)

	var oasResponseBuffer *bytes.Buffer
	if oasfile != nil {
		defer oasfile.Close()
		oasResponseBuffer = bytes.NewBuffer(nil)
		written, err := io.Copy(oasResponseBuffer, oasfile)
		if err != nil {
			log.Error().Err(err).Msgf("failed to copy OpenAPI specification into response buffer")
		} else {
			log.Info().Msgf("copied %d bytes from %s into openapi response buffer.", written, openApiSpecFileName)
		}
	}

	port := os.Getenv("SERVICE_PORT")
	if port == "" {
		port = "8880"
	}

	r := chi.NewRouter()

	app := application.NewAPI(r, ctx, oasResponseBuffer)

	err := app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
