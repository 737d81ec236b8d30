// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"embed"

	"github.com/gviegas/ocean/driver"
)

//go:embed shaders
var shaderFS embed.FS

var seaStages = [...]struct {
	kind driver.StageKind
	file string
}{
	{driver.SVertex, "shaders/sea.vert"},
	{driver.STessControl, "shaders/sea.tesc"},
	{driver.STessEval, "shaders/sea.tese"},
	{driver.SFragment, "shaders/sea.frag"},
}

// seaStagesSource loads the shader stages of the sea program.
func seaStagesSource() ([]driver.Stage, error) {
	stages := make([]driver.Stage, 0, len(seaStages))
	for _, s := range seaStages {
		src, err := shaderFS.ReadFile(s.file)
		if err != nil {
			return nil, err
		}
		stages = append(stages, driver.Stage{Kind: s.kind, Source: string(src)})
	}
	return stages, nil
}
