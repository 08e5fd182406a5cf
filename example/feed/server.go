package main

import (
	"compress/flate"
	"context"
	"fmt"
	"image/jpeg"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/o1egl/govatar"
	"golang.org/x/net/netutil"
)

const (
	natsPort     = 8501
	httpAddr     = "127.0.0.1:8500"
	tileSubject  = "gallery.tiles"
	tileInterval = 3 * time.Second
)

// FeedServer holds the HTTP side of the backend.
type FeedServer struct {
	mux *chi.Mux
}

func Create(ah *app.Handler) {
	var srv FeedServer

	opts := &server.Options{
		ServerName:            "flowgrid feed",
		Host:                  "127.0.0.1",
		Port:                  natsPort,
		NoLog:                 true,
		NoSigs:                true,
		MaxControlLine:        4096,
		DisableShortFirstPing: true,
	}
	ns, err := server.NewServer(opts)
	if err != nil {
		panic(err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		panic("could not start the server (is another instance running on the same port?)")
	}

	fmt.Printf("NATS server name: %q\n", ns.Name())
	fmt.Printf("NATS server addr: %q\n", ns.Addr())

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		panic(err)
	}

	// Publish a fresh tile location on a fixed cadence. The gallery
	// appends each one to its live section.
	go func() {
		ticker := time.NewTicker(tileInterval)
		defer ticker.Stop()
		n := 0
		for range ticker.C {
			loc := fmt.Sprintf("http://%s/tiles/seed-%d.jpg", httpAddr, n)
			if err := nc.Publish(tileSubject, []byte(loc)); err != nil {
				log.Printf("publish %s: %v", tileSubject, err)
			}
			n++
		}
	}()

	r := chi.NewRouter()
	srv.mux = r

	r.Use(middleware.CleanPath)
	r.Use(middleware.Logger)
	compressor := middleware.NewCompressor(flate.DefaultCompression,
		"application/wasm", "text/css", "image/svg+xml")
	r.Use(compressor.Handler)
	r.Use(middleware.Recoverer)

	r.Get("/tiles/{name}", serveTile)

	// The go-app shell picks up any route the backend does not handle.
	srv.mux.Handle("/*", ah)

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		panic(err)
	}

	mainServer := &http.Server{
		Addr:    listener.Addr().String(),
		Handler: srv.mux,
	}

	hostURL := url.URL{Scheme: "http", Host: mainServer.Addr}
	log.Printf("Serving at %s\n", hostURL.String())

	shutdown := make(chan struct{})
	go func() {
		listener = netutil.LimitListener(listener, 100)
		defer func() { _ = listener.Close() }()

		err := mainServer.Serve(listener)
		if err != nil {
			if err == http.ErrServerClosed {
				fmt.Println("Feed server was stopped!")
			} else {
				log.Fatal(err)
			}
		}
		close(shutdown)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	shutdownServer(mainServer, shutdown)
	fmt.Println("Program ended")
}

// serveTile generates a deterministic avatar for the requested name and
// encodes it as JPEG. The same name always yields the same image, so
// clients may cache aggressively.
func serveTile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	gender := govatar.MALE
	if len(name)%2 == 1 {
		gender = govatar.FEMALE
	}
	img, err := govatar.GenerateForUsername(gender, name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 80}); err != nil {
		log.Printf("encode tile %s: %v", name, err)
	}
}

// shutdownServer stops the server gracefully.
func shutdownServer(server *http.Server, shutdown chan struct{}) {
	fmt.Println("\nStopping feed server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
	<-shutdown
	fmt.Println("Feed server is shutdown!")
}
