// Command strictvec generates and checks strict-encoding test vectors.
//
// Vectors are named hex strings produced by the library's own codecs and
// written as YAML, so other implementations of the wire format can verify
// byte-for-byte agreement:
//
//	strictvec --out vectors.yaml
//	strictvec --check vectors.yaml
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		outPath   = flag.String("out", "", "Write vectors to this file (default stdout)")
		checkPath = flag.String("check", "", "Check vectors in this file against the library")
		verbose   = flag.Bool("verbose", false, "Log each vector as it is processed")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if *checkPath != "" {
		if err := check(*checkPath, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generate(*outPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generate(outPath string, logger *zap.Logger) error {
	vectors, err := buildVectors()
	if err != nil {
		return fmt.Errorf("build vectors: %w", err)
	}
	for _, v := range vectors {
		logger.Info("vector", zap.String("name", v.Name), zap.String("hex", v.Hex))
	}

	data, err := yaml.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func check(path string, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	var want []vector
	if err := yaml.Unmarshal(data, &want); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	got, err := buildVectors()
	if err != nil {
		return fmt.Errorf("build vectors: %w", err)
	}
	byName := make(map[string]string, len(got))
	for _, v := range got {
		byName[v.Name] = v.Hex
	}

	mismatches := 0
	for _, w := range want {
		g, ok := byName[w.Name]
		if !ok {
			logger.Warn("unknown vector", zap.String("name", w.Name))
			mismatches++
			continue
		}
		if g != w.Hex {
			logger.Warn("mismatch",
				zap.String("name", w.Name),
				zap.String("want", w.Hex),
				zap.String("got", g))
			mismatches++
			continue
		}
		logger.Info("ok", zap.String("name", w.Name))
	}
	if mismatches > 0 {
		return fmt.Errorf("%d vector(s) failed", mismatches)
	}
	fmt.Printf("%d vector(s) ok\n", len(want))
	return nil
}
