package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Delta string `json:"delta"`
}

type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type View struct {
	Mode   string `json:"mode"`
	Footer string `json:"footer"`
	Pinpad *struct {
		Metrics []Metric `json:"metrics"`
	} `json:"pinpad"`
	Version *struct {
		Metrics       []Metric `json:"metrics"`
		Total         *Metric  `json:"total"`
		Message       string   `json:"message"`
		POSModel      string   `json:"pos_model"`
		RegionMessage string   `json:"region_message"`
		RegionChart   *struct {
			Bars []Bar `json:"bars"`
		} `json:"region_chart"`
	} `json:"version"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "dashboard base URL")
	version := flag.String("version", "", "version filter")
	pos := flag.String("pos", "", "comma separated device ids")
	pinpad := flag.Bool("pinpad", false, "show the pinpad ranking")
	model := flag.String("model", "", "POS model for the region ranking")
	flag.Parse()

	q := url.Values{}
	if *version != "" {
		q.Set("version", *version)
	}
	for _, id := range strings.Split(*pos, ",") {
		if id != "" {
			q.Add("pos", id)
		}
	}
	q.Set("pinpad", fmt.Sprint(*pinpad))
	if *model != "" {
		q.Set("model", *model)
	}

	resp, err := http.Get(*baseURL + "/api/v1/report?" + q.Encode())
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	fmt.Println("GET /api/v1/report status:", resp.Status)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Println("Response body:", string(body))
		return
	}

	var view View
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		panic(err)
	}

	if view.Pinpad != nil {
		for _, m := range view.Pinpad.Metrics {
			fmt.Printf("%-30s %6d\n", m.Label, m.Value)
		}
	}
	if v := view.Version; v != nil {
		if v.Message != "" {
			fmt.Println(v.Message)
		}
		for _, m := range v.Metrics {
			fmt.Printf("%-30s %6d  %s\n", m.Label, m.Value, m.Delta)
		}
		if v.Total != nil {
			fmt.Printf("%-30s %6d\n", v.Total.Label, v.Total.Value)
		}
		fmt.Println("Region ranking for", v.POSModel)
		if v.RegionChart != nil {
			for _, b := range v.RegionChart.Bars {
				fmt.Printf("  %-4s %6d\n", b.Label, b.Value)
			}
		} else {
			fmt.Println(" ", v.RegionMessage)
		}
	}
	fmt.Println(view.Footer)
}
