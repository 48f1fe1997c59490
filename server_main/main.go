// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"

	"golang.org/x/net/netutil"

	"heightfield/server"
	"heightfield/server/terrain"
	"heightfield/server/terrain/noise"
)

func main() {
	var (
		port           int
		maxConnections int
		size           int
		seed           int64
		spacing        float64
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.IntVar(&size, "size", 512, "grid vertices per side")
	flag.Int64Var(&seed, "seed", noise.Seed, "terrain noise seed")
	flag.Float64Var(&spacing, "spacing", 25, "meters between grid vertices")
	flag.Parse()

	if size < 2 {
		log.Fatal("invalid argument size: ", size)
	}

	field, err := terrain.FromSource(noise.New(seed), size, size, float32(spacing))
	if err != nil {
		log.Fatal("height field: ", err)
	}

	hub := server.NewHub(server.HubOptions{
		Field: field,
	})

	go hub.Run()

	log.Printf("serving %dx%d field, %.0fm spacing", field.Width(), field.Depth(), field.CellSpacing())

	http.HandleFunc("/", hub.ServeIndex)
	http.HandleFunc("/ws", hub.ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
