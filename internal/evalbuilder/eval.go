package evalbuilder

import (
	"fmt"

	material "github.com/ChizhovVadim/CounterOthello/pkg/eval/material"
	positional "github.com/ChizhovVadim/CounterOthello/pkg/eval/positional"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "utility", "material":
			return material.NewEvaluationService()
		case "heuristic", "positional":
			return positional.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}

// Validate reports a bad key before an engine is built with it.
func Validate(key string) error {
	switch key {
	case "", "utility", "material", "heuristic", "positional":
		return nil
	}
	return fmt.Errorf("bad eval %v", key)
}
