package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/suzuki-shunsuke/yala/pkg/config"
)

func main() {
	if err := core(); err != nil {
		log.Fatal(err)
	}
}

func core() error {
	return gen(&config.Config{}, "json-schema/yala.json")
}

func gen(input any, p string) error {
	s := jsonschema.Reflect(input)
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema as JSON: %w", err)
	}
	if err := os.WriteFile(p, []byte(strings.ReplaceAll(string(b), "http://json-schema.org", "https://json-schema.org")+"\n"), 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("write JSON Schema to %s: %w", p, err)
	}
	return nil
}
