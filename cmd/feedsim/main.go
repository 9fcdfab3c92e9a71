// feedsim is a local stand-in for the adsb.lol military endpoint.
// It serves GET /v2/mil with a handful of simulated military aircraft
// whose positions advance on a fixed tick, so the server can be
// developed and demoed without network access.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const earthRadiusKm = 6371.0

type aircraft struct {
	Hex      string  `json:"hex"`
	Flight   string  `json:"flight"`
	TypeCode string  `json:"t"`
	Owner    string  `json:"owner"`
	Squawk   string  `json:"squawk"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	AltBaro  float64 `json:"alt_baro"`
	Gs       float64 `json:"gs"`
	Track    float64 `json:"track"`
	Seen     float64 `json:"seen"`
}

type report struct {
	Now      float64    `json:"now"`
	Total    int        `json:"total"`
	Aircraft []aircraft `json:"ac"`
}

var (
	mu   sync.Mutex
	live []aircraft
)

func initializeAircraft() {
	live = []aircraft{
		{Hex: "ae01ce", Flight: "VIPER11", TypeCode: "F16", Owner: "United States Air Force", Squawk: "4701", Lat: 34.0522, Lon: -118.2437, AltBaro: 22000, Gs: 420, Track: 45},
		{Hex: "ae1460", Flight: "DOOM81", TypeCode: "B52", Owner: "United States Air Force", Squawk: "4702", Lat: 48.2, Lon: -101.3, AltBaro: 31000, Gs: 440, Track: 120},
		{Hex: "ae04d9", Flight: "PACK61", TypeCode: "KC135", Owner: "United States Air Force", Squawk: "4703", Lat: 52.4, Lon: -0.5, AltBaro: 26000, Gs: 390, Track: 270},
		{Hex: "ae07f2", Flight: "RCH440", TypeCode: "C17", Owner: "United States Air Force", Squawk: "4704", Lat: 50.03, Lon: 8.56, AltBaro: 33000, Gs: 460, Track: 90},
		{Hex: "ae27e5", Flight: "SNTRY50", TypeCode: "E3TF", Owner: "United States Air Force", Squawk: "4705", Lat: 35.33, Lon: -97.25, AltBaro: 29000, Gs: 360, Track: 200},
		{Hex: "ae11aa", Flight: "ARMY123", TypeCode: "UH60", Owner: "United States Army", Squawk: "4706", Lat: 36.0, Lon: -79.0, AltBaro: 1500, Gs: 120, Track: 10},
		{Hex: "43c6f1", Flight: "", TypeCode: "HAWK", Owner: "Royal Air Force", Squawk: "7010", Lat: 53.16, Lon: -4.06, AltBaro: 0, Gs: 0, Track: 0},
	}
}

// advance moves one aircraft along its track for dt seconds.
func advance(ac *aircraft, dt float64) {
	speedKmPerSec := ac.Gs * 0.000514444
	distanceKm := speedKmPerSec * dt

	trackRad := ac.Track * math.Pi / 180.0
	latRad := ac.Lat * math.Pi / 180.0
	lonRad := ac.Lon * math.Pi / 180.0

	newLatRad := math.Asin(math.Sin(latRad)*math.Cos(distanceKm/earthRadiusKm) +
		math.Cos(latRad)*math.Sin(distanceKm/earthRadiusKm)*math.Cos(trackRad))
	newLonRad := lonRad + math.Atan2(math.Sin(trackRad)*math.Sin(distanceKm/earthRadiusKm)*math.Cos(latRad),
		math.Cos(distanceKm/earthRadiusKm)-math.Sin(latRad)*math.Sin(newLatRad))

	ac.Lat = newLatRad * 180.0 / math.Pi
	ac.Lon = math.Mod(newLonRad*180.0/math.Pi+180, 360) - 180

	if ac.AltBaro > 0 {
		ac.AltBaro += float64((rand.Intn(10) - 5) * 10)
		if ac.AltBaro < 1000 {
			ac.AltBaro = 1000
		}
		ac.Gs += float64(rand.Intn(11) - 5)
		ac.Track = math.Mod(ac.Track+float64(rand.Intn(5)-2)+360, 360)
	}
}

func milHandler(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	snapshot := make([]aircraft, len(live))
	copy(snapshot, live)
	mu.Unlock()

	resp := report{
		Now:      float64(time.Now().UnixMilli()) / 1000.0,
		Total:    len(snapshot),
		Aircraft: snapshot,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func main() {
	addr := flag.String("addr", ":8090", "listen address")
	tick := flag.Duration("tick", 5*time.Second, "position update interval")
	flag.Parse()

	initializeAircraft()

	go func() {
		ticker := time.NewTicker(*tick)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for i := range live {
				advance(&live[i], tick.Seconds())
			}
			mu.Unlock()
		}
	}()

	http.HandleFunc("/v2/mil", milHandler)

	log.Printf("feedsim serving %d aircraft on %s/v2/mil", len(live), *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
