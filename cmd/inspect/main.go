package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/chewxy/math32"

	"solidview/internal/camera"
	"solidview/internal/config"
	"solidview/internal/geometry"
	"solidview/internal/mathutil"
)

func main() {
	configFile := flag.String("config", "", "Config file with shape parameters")
	aspect := flag.Float64("aspect", 1, "Viewport aspect ratio used for the fit")
	areas := flag.Bool("areas", false, "Also print surface area by facing direction")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	params := cfg.Shapes.WithDefaults()

	kinds := geometry.Kinds()
	if flag.NArg() > 0 {
		kinds = kinds[:0:0]
		for _, name := range flag.Args() {
			k, ok := geometry.ParseKind(name)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown primitive %q\n", name)
				os.Exit(1)
			}
			kinds = append(kinds, k)
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "primitive\tverts\ttris\tindexed\tmin\tmax\tradius\tdistance\tznear\tzfar")
	for _, k := range kinds {
		m := geometry.Build(k, params)
		cam := camera.New()
		cam.FitToBounds(m.Bounds, float32(*aspect))
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
			k, m.VertexCount(), m.TriangleCount(), m.IsIndexed(),
			fmtVec(m.Bounds.Min), fmtVec(m.Bounds.Max), m.Bounds.Radius(),
			cam.Distance, cam.ZNear, cam.ZFar)
	}
	tw.Flush()

	if !*areas {
		return
	}
	for _, k := range kinds {
		m := geometry.Build(k, params)
		fmt.Printf("\n%s surface area by direction:\n", k)
		byDir := areaByDirection(&m)
		for _, d := range directions {
			fmt.Printf("  %s: %.4f\n", d, byDir[d])
		}
	}
}

var directions = []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// areaByDirection buckets every triangle's area by the dominant axis of its
// face normal.
func areaByDirection(m *geometry.Mesh) map[string]float32 {
	out := map[string]float32{}
	n := m.VertexCount()
	at := func(i int) mathutil.Vec3 {
		return mathutil.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
	}
	add := func(i0, i1, i2 int) {
		if i0 >= n || i1 >= n || i2 >= n {
			return
		}
		v0, v1, v2 := at(i0), at(i1), at(i2)
		c := v1.Sub(v0).Cross(v2.Sub(v0))
		area := 0.5 * c.Len()
		ax, ay, az := math32.Abs(c[0]), math32.Abs(c[1]), math32.Abs(c[2])
		var dir string
		switch {
		case ax >= ay && ax >= az:
			dir = sign(c[0]) + "X"
		case ay >= ax && ay >= az:
			dir = sign(c[1]) + "Y"
		default:
			dir = sign(c[2]) + "Z"
		}
		out[dir] += area
	}

	if m.IsIndexed() {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			add(int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2]))
		}
	} else {
		for i := 0; i+2 < n; i += 3 {
			add(i, i+1, i+2)
		}
	}
	return out
}

func sign(v float32) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func fmtVec(v mathutil.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
