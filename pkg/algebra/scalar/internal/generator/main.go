package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-algebra")

	cfg := scalarConfig{
		Scalars: []scalarSpec{
			{Name: "Int32", Underlying: "int32", Bits: 32, Description: "signed integer"},
			{Name: "Int64", Underlying: "int64", Bits: 64, Description: "signed integer"},
			{Name: "Float32", Underlying: "float32", Bits: 32, Description: "floating point"},
			{Name: "Float64", Underlying: "float64", Bits: 64, Description: "floating point"},
		},
	}

	for _, s := range cfg.Scalars {
		assertNoError(s.check(), "for scalar \"%s\"", s.Name)
	}

	assertNoError(bgen.Generate(cfg, "scalar", "templates",
		bavard.Entry{
			File:      "../../scalar.go",
			Templates: []string{"scalar.go.tmpl"},
		},
	), "for package \"scalar\"")
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type scalarConfig struct {
	Scalars []scalarSpec
}

type scalarSpec struct {
	Name        string
	Underlying  string
	Bits        uint
	Description string
}

// check that the underlying kind is one the field package accepts.
func (s scalarSpec) check() error {
	switch s.Underlying {
	case "int8", "int16", "int32", "int64", "int", "float32", "float64":
		return nil
	}

	return fmt.Errorf("unsupported underlying kind %s", s.Underlying)
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
