package main

import (
	"log"

	"git.lost.host/meutraa/notefall/internal/audio"
	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/input"
	"git.lost.host/meutraa/notefall/internal/parser"
	"git.lost.host/meutraa/notefall/internal/render"
	"git.lost.host/meutraa/notefall/internal/score"
	"git.lost.host/meutraa/notefall/internal/theme"
	"git.lost.host/meutraa/notefall/internal/timeline"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	kingpin.Parse()
	config.Setup()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{Path: *config.Database}
	var au audio.Gateway = &audio.DefaultGateway{}
	if *config.Mute {
		au = audio.NullGateway{}
	}

	chart, err := psr.Parse(*config.Chart)
	if nil != err {
		return err
	}

	if err := scr.Init(); nil != err {
		return err
	}
	defer scr.Deinit()

	if err := au.Init(); nil != err {
		log.Println("unable to init audio, muting:", err)
		au = audio.NullGateway{}
	}

	events := make(chan input.Event, 128)
	var closeInput func()
	if *config.Device != "" {
		closeInput, err = input.Device(*config.Device, events)
	} else {
		closeInput, err = input.Terminal(events)
	}
	if nil != err {
		return err
	}
	defer closeInput()

	// Raw mode from here on, restore the terminal before returning
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	view := render.NewView(r, th, config.Field)
	p := NewProgram(chart, scr, au, view, timeline.SystemClock, config.Field)
	p.Run(events, *config.Delay)
	return nil
}
