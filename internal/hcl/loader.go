// Package hcl is the HCL implementation of the config.Loader interface.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/stagekit/internal/config"
	"github.com/vk/stagekit/internal/ctxlog"
	"github.com/vk/stagekit/internal/fsutil"
)

// Loader reads .hcl plan files into the format-agnostic config model.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// variablesRoot decodes only the `variable` blocks of a file; everything
// else lands in Remain for the second pass.
type variablesRoot struct {
	Variables []*variableBlock `hcl:"variable,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type variableBlock struct {
	Name    string `hcl:"name,label"`
	Default string `hcl:"default,optional"`
}

// stagesRoot decodes the `stage` blocks of a file with the variable
// evaluation context in place.
type stagesRoot struct {
	Stages []*stageBlock `hcl:"stage,block"`
	Remain hcl.Body      `hcl:",remain"`
}

type stageBlock struct {
	Name     string        `hcl:"name,label"`
	Source   string        `hcl:"source,optional"`
	Artifact string        `hcl:"artifact,optional"`
	Command  []string      `hcl:"command,optional"`
	Aliases  []*aliasBlock `hcl:"alias,block"`
}

type aliasBlock struct {
	Target string `hcl:"target"`
	Link   string `hcl:"link"`
}

// Load orchestrates the plan loading process. Variables from every file
// are collected first so any stage may reference any variable, then the
// stages themselves are decoded in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL plan loader started.", "path_count", len(paths))

	var planFiles []string
	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing plan path %s: %w", path, err)
		}
		planFiles = append(planFiles, files...)
	}
	logger.Debug("Discovered plan files.", "count", len(planFiles))

	parser := hclparse.NewParser()
	var parsed []*hcl.File
	for _, file := range planFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse plan file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}

	evalCtx, err := l.buildEvalContext(parsed)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	seen := make(map[string]struct{})
	for i, hclFile := range parsed {
		var root stagesRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode plan file %s: %w", planFiles[i], diags)
		}
		for _, stage := range root.Stages {
			translated, err := translateStage(stage)
			if err != nil {
				return nil, fmt.Errorf("in plan file %s: %w", planFiles[i], err)
			}
			if _, dup := seen[translated.Name]; dup {
				return nil, fmt.Errorf("duplicate stage %q in plan file %s", translated.Name, planFiles[i])
			}
			seen[translated.Name] = struct{}{}
			model.Stages = append(model.Stages, translated)
		}
	}

	logger.Debug("HCL plan loading complete.", "stages", len(model.Stages))
	return model, nil
}

// buildEvalContext collects `variable` blocks from all files and exposes
// them to stage expressions as the `var` object.
func (l *Loader) buildEvalContext(files []*hcl.File) (*hcl.EvalContext, error) {
	values := make(map[string]cty.Value)
	for _, hclFile := range files {
		var root variablesRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode variable blocks: %w", diags)
		}
		for _, v := range root.Variables {
			if _, dup := values[v.Name]; dup {
				return nil, fmt.Errorf("duplicate variable %q", v.Name)
			}
			values[v.Name] = cty.StringVal(v.Default)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}, nil
}

// translateStage converts a decoded stage block into the model form,
// applying its validation rules.
func translateStage(block *stageBlock) (*config.Stage, error) {
	if block.Name == "" {
		return nil, fmt.Errorf("stage name cannot be empty")
	}
	if (block.Source == "") != (block.Artifact == "") {
		return nil, fmt.Errorf("stage %q must set source and artifact together", block.Name)
	}

	stage := &config.Stage{
		Name:     block.Name,
		Source:   block.Source,
		Artifact: block.Artifact,
		Command:  block.Command,
	}
	for _, alias := range block.Aliases {
		if alias.Target == "" || alias.Link == "" {
			return nil, fmt.Errorf("stage %q has an alias with an empty target or link", block.Name)
		}
		stage.Aliases = append(stage.Aliases, &config.Alias{
			Target: alias.Target,
			Link:   alias.Link,
		})
	}
	return stage, nil
}
