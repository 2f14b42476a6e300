/*
Package overlay provides retained-mode push buttons drawn over a game frame.

# Overview

Two button kinds are available. A TextureButton shows an image per
interaction state, and a FlatButton draws a per-state background and
border. Both carry a centered text Label.

Every button is in exactly one State, resolved from its interaction flags
with the precedence disabled > press > hover > normal. The state picks the
StyleRecord whose font attributes are copied onto the label, and for
texture buttons it picks the texture to draw.

Widgets are retained: create them once, mutate them through setters, and
the Overlay redraws only when a setter reports a change.

# Quick Start

	renderer, _ := opengl.NewRenderer(1920, 1080)
	fonts, _ := fontface.NewProvider()
	ui := overlay.New(renderer, overlay.WithFontProvider(fonts))

	play, _ := overlay.NewFlatButton(
	    overlay.WithPosition(40, 40),
	    overlay.WithText("Play"),
	    overlay.WithOnClick(startGame),
	)
	ui.Add(play)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    ui.HandleInput(input.Input())
	    input.EndFrame()
	    ui.Draw()
	    window.SwapBuffers()
	}

# Styles

A StyleSet maps every State to a StyleRecord. Sets are validated when they
are assigned, so a set missing a state is rejected with ErrMissingState
instead of failing at draw time:

	style := overlay.DefaultFlatButtonStyle()
	rec := style[overlay.StateHover]
	rec.Border = overlay.RGB(255, 200, 0)
	style[overlay.StateHover] = rec
	if err := play.SetStyle(style); err != nil {
	    return err
	}

Themes can also be loaded from TOML; see package theme.

# Textures

A texture button given only a normal texture uses it for every state.
Missing textures are not an error: the state simply draws no image. Use
NewNinePatch to stretch a frame image without distorting its corners.

	tex, err := overlay.LoadTexture(file)
	btn, err := overlay.NewTextureButton(
	    overlay.WithTexture(tex),
	    overlay.WithScale(2),
	)

# Change Notification

Each mutating setter notifies the widget's Observer exactly once per actual
change. The Overlay installs itself as observer on Add; other code can use
ObserverFunc:

	btn.SetObserver(overlay.ObserverFunc(func(w overlay.Widget) {
	    log.Println("changed", w.Label().Text())
	}))
*/
package overlay
