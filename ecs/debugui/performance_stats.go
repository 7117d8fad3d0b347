package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// record pushes one frame time into the ring buffer and returns the average
// in milliseconds.
func (ps *PerformanceStatsComponent) record(delta time.Duration) float32 {
	ps.frameHistory[ps.frameIndex] = float32(delta.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

// Render shows world counts, frame timing from the FrameTime resource and,
// when a Profiler resource is present, per-system timings.
func (ps *PerformanceStatsComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var delta time.Duration
	if ft, ok := ecs.GetResource[ecs.FrameTime](w); ok {
		delta = ft.Delta
	}
	avgFrameTime := ps.record(delta)

	stats := w.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Text(fmt.Sprintf("Resources: %d", stats.ResourceCount))

	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if p, ok := ecs.GetResource[Profiler](w); ok && p.Schedule != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Matched")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range p.Schedule.Stats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.Matched))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Storage Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StorageStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Index")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, c := range stats.Components {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(c.Type.String())
				imgui.TableNextColumn()
				imgui.Text(c.Kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", c.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resource Details") {
		for _, t := range stats.ResourceTypes {
			imgui.BulletText(t.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}
