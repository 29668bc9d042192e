package main

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/telemetrytv/wsrp"
	natstransport "github.com/telemetrytv/wsrp/nats-transport"
)

func main() {
	natsConn, err := nats.Connect("nats://localhost:4222")
	if err != nil {
		panic(err)
	}
	defer natsConn.Close()

	consumer := wsrp.NewConsumer("example-consumer", wsrp.V2, natstransport.New(natsConn))
	if err := consumer.Start(); err != nil {
		panic(err)
	}
	defer consumer.Stop()

	// producers answer the consumer announcement asynchronously
	time.Sleep(500 * time.Millisecond)

	for _, producer := range consumer.Producers() {
		fmt.Printf("producer %s (WSRP %s) serves %v\n", producer.Name, producer.Version, producer.PortletHandles)
	}

	resp, err := consumer.GetMarkup(&wsrp.GetMarkup{
		PortletContext: wsrp.PortletContext{PortletHandle: "markup"},
		MarkupParams: wsrp.MarkupParams{
			Locales:     []string{"en"},
			MimeTypes:   []string{wsrp.MimeTypeHTML},
			Mode:        wsrp.ModeView,
			WindowState: wsrp.WindowStateNormal,
		},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s: %s\n", resp.MarkupContext.MimeType, resp.MarkupContext.MarkupString)
}
