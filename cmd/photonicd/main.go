// Command photonicd demonstrates wiring a small scene together and
// running it against a terminal preview output.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/fooker/photonic"
	"github.com/fooker/photonic/color"
	"github.com/fooker/photonic/effects"
	"github.com/fooker/photonic/output"
)

const stripSize = 60

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	builder := photonic.NewSceneBuilder()

	brightnessIn, err := photonic.NewInput[float32](builder, "brightness")
	if err != nil {
		return err
	}
	speedIn, err := photonic.NewInput[float32](builder, "speed")
	if err != nil {
		return err
	}

	base, err := photonic.Node[color.RGB](builder, "gradient", effects.GradientDecl{
		Size: stripSize,
		From: photonic.NewFixed(color.HSV{H: 0, S: 1, V: 1}.ToRGB()),
		To:   photonic.NewFixed(color.HSV{H: 300, S: 1, V: 1}.ToRGB()),
	})
	if err != nil {
		return err
	}

	rainbow, err := photonic.Node[color.RGB](builder, "rainbow", rotationDecl{source: base, speed: speedIn})
	if err != nil {
		return err
	}

	root, err := photonic.Node[color.RGB](builder, "dimmed", dimDecl{source: rainbow, brightness: brightnessIn})
	if err != nil {
		return err
	}

	scene, introspection, err := photonic.Build(builder, root)
	if err != nil {
		return err
	}
	introspection.Log()

	term := output.NewTerminal(os.Stdout, false)
	loop := photonic.NewLoop(scene, root, introspection, term, nil,
		photonic.WithFPS(30),
		photonic.WithLogInterval(150),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return loop.Run(ctx)
}

// rotationDecl wires a speed input over a rotating copy of its
// source.
type rotationDecl struct {
	source photonic.NodeHandle[color.RGB]
	speed  photonic.InputHandle[float32]
}

func (d rotationDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	speed, err := photonic.BoundAttr(builder, "speed", d.speed, photonic.Bounds[float32]{Min: 0, Max: 10}, 1)
	if err != nil {
		return nil, err
	}
	return effects.RotationDecl{Source: d.source, Speed: speed}.Materialize(name, builder)
}

// dimDecl wires a brightness input over its source.
type dimDecl struct {
	source     photonic.NodeHandle[color.RGB]
	brightness photonic.InputHandle[float32]
}

func (d dimDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	attr, err := photonic.BoundAttr(builder, "brightness", d.brightness, photonic.Normal(), 1)
	if err != nil {
		return nil, err
	}
	return effects.BrightnessDecl{Source: d.source, Brightness: attr}.Materialize(name, builder)
}
