package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quadsim/internal/flight"
	"github.com/san-kum/quadsim/internal/sim"
)

var _ = Describe("Mission flight", func() {
	var (
		s      *sim.Simulator
		params sim.Params
		home   = flight.Position{Lat: 12.9716, Lon: 77.5946, Alt: 20}
	)

	BeforeEach(func() {
		s = sim.New()
		params = sim.DefaultParams()
		params.Start = home
	})

	AfterEach(func() {
		s.Reset()
	})

	Context("with a single waypoint at the start position", func() {
		BeforeEach(func() {
			params.Waypoints = []flight.Waypoint{home}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
		})

		It("captures it on the first tick and then holds station", func() {
			_, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Mission().Index).To(Equal(1))

			f, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Mission().Index).To(Equal(1))
			Expect(s.Target()).To(Equal(f.Position))
		})
	})

	Context("with return-to-launch set", func() {
		BeforeEach(func() {
			params.RTL = true
			params.Waypoints = []flight.Waypoint{
				{Lat: home.Lat + 0.01, Lon: home.Lon, Alt: home.Alt},
				home,
			}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
		})

		It("targets launch and never advances the waypoint index", func() {
			frames, err := s.Run(context.Background(), 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(50))
			Expect(s.Mission().Index).To(BeZero())
			Expect(s.Target()).To(Equal(home))
			Expect(frames[49].Position).To(Equal(home))
		})
	})

	Context("with a fast approach gain", func() {
		BeforeEach(func() {
			params.ApproachGain = 0.9
			params.Waypoints = []flight.Waypoint{
				{Lat: home.Lat + 1e-4, Lon: home.Lon, Alt: home.Alt},
				{Lat: home.Lat + 1e-4, Lon: home.Lon + 1e-4, Alt: home.Alt},
			}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
		})

		It("visits every waypoint in order", func() {
			var indices []int
			for range 20 {
				_, err := s.Tick()
				Expect(err).NotTo(HaveOccurred())
				indices = append(indices, s.Mission().Index)
			}
			Expect(indices[0]).To(BeZero())
			for i := 1; i < len(indices); i++ {
				Expect(indices[i]).To(BeNumerically(">=", indices[i-1]))
			}
			Expect(s.Mission().Complete()).To(BeTrue())
		})
	})

	Context("over a hundred ticks toward a distant waypoint", func() {
		var frames []flight.Frame
		target := flight.Position{Lat: home.Lat + 0.001, Lon: home.Lon - 0.002, Alt: home.Alt + 15}

		BeforeEach(func() {
			params.Waypoints = []flight.Waypoint{target}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())

			var err error
			frames, err = s.Run(context.Background(), 100)
			Expect(err).NotTo(HaveOccurred())
		})

		It("records one frame per tick spaced by dt", func() {
			Expect(frames).To(HaveLen(100))
			Expect(s.History()).To(HaveLen(100))
			for i, f := range frames {
				Expect(f.Time).To(BeNumerically("~", float64(i+1)*params.Dt, 1e-9))
			}
		})

		It("never moves away from the target", func() {
			prev := home.Distance(target)
			for _, f := range frames {
				d := f.Position.Distance(target)
				Expect(d).To(BeNumerically("<=", prev))
				prev = d
			}
		})

		It("keeps every motor command within PWM limits", func() {
			for _, f := range frames {
				for _, m := range f.MotorCommands {
					Expect(m).To(BeNumerically(">=", flight.PWMMin))
					Expect(m).To(BeNumerically("<=", flight.PWMMax))
				}
			}
		})

		It("keeps every value finite", func() {
			for _, f := range frames {
				Expect(f.Position.IsFinite()).To(BeTrue())
				Expect(f.ControlState.Axes().IsFinite()).To(BeTrue())
			}
		})
	})

	Context("with zero gains", func() {
		BeforeEach(func() {
			params.Gains = flight.Gains{}
			params.Waypoints = []flight.Waypoint{{Lat: home.Lat + 1, Lon: home.Lon + 1, Alt: 500}}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
		})

		It("leaves the control state at zero", func() {
			frames, err := s.Run(context.Background(), 10)
			Expect(err).NotTo(HaveOccurred())
			for _, f := range frames {
				Expect(f.ControlState).To(Equal(flight.ControlState{}))
			}
		})
	})

	Context("when restarted", func() {
		It("begins from an empty history", func() {
			params.Waypoints = []flight.Waypoint{home}
			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
			Expect(s.Run(context.Background(), 12)).To(HaveLen(12))

			Expect(s.Start(params)).Error().NotTo(HaveOccurred())
			Expect(s.History()).To(BeEmpty())

			f, err := s.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Time).To(BeNumerically("~", params.Dt, 1e-12))
		})
	})

	DescribeTable("rejects unusable start parameters",
		func(edit func(p *sim.Params)) {
			edit(&params)
			_, err := s.Start(params)
			Expect(err).To(MatchError(flight.ErrInvalidConfiguration))
			Expect(s.Phase()).To(Equal(sim.Idle))
		},
		Entry("zero dt", func(p *sim.Params) { p.Dt = 0 }),
		Entry("NaN latitude", func(p *sim.Params) { p.Start.Lat = math.NaN() }),
		Entry("infinite waypoint", func(p *sim.Params) {
			p.Waypoints = []flight.Waypoint{{Alt: math.Inf(-1)}}
		}),
		Entry("NaN kp", func(p *sim.Params) { p.Gains.Kp = math.NaN() }),
	)
})
