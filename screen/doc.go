// Package screen implements the screens of a nice!view style display: a
// 160x68 Sharp memory LCD mounted a quarter turn away, so every layout here is
// written for a 68x160 portrait canvas.
//
// Status shows the connection, Bluetooth profile, layer and battery, and
// redraws only when one of them actually changes. Log shows the most recent
// events as short text lines, newest first. NewBlank blanks the panel of a
// peripheral half and ignores every event.
//
// Each screen is a controller.Controller and owns its panel:
//
//	sub, _ := bus.Subscribe()
//	st := screen.NewStatus(panel, sub)
//	if err := st.Render(); err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(controller.Run(ctx, st))
package screen
