package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

var _ = Describe("Engine pipeline", func() {
	var (
		eng  *sim.Engine
		disc *physics.Disc
		vp   = dynamo.Viewport{Width: 800, Height: 600}
	)

	BeforeEach(func() {
		var err error
		eng, err = sim.New(vp)
		Expect(err).NotTo(HaveOccurred())
		disc = physics.NewDisc(dynamo.Vec2{X: 376, Y: 276}, 24, "#cf5353")
		eng.AddBody(disc)
	})

	Context("after one frame without input", func() {
		BeforeEach(func() {
			eng.Step(dynamo.NewKeySet())
		})

		It("applies gravity before drag", func() {
			Expect(disc.Phys.Vel.Y).To(BeNumerically("~", 0.396, 1e-12))
			Expect(disc.Phys.Vel.X).To(BeZero())
		})

		It("moves by the new velocity", func() {
			Expect(disc.Phys.Pos.Y).To(BeNumerically("~", 276.396, 1e-12))
			Expect(disc.Phys.Pos.X).To(Equal(376.0))
		})

		It("draws the disc at its floored position", func() {
			buf := eng.Buffer()
			// top-center of the raster lands on (376+24, 276)
			Expect(buf[276*800+400]).To(Equal(uint32(0xcf5353)))
			Expect(buf[276*800+376]).To(BeZero())
		})
	})

	Context("falling for a long time", func() {
		It("stays inside the viewport every frame", func() {
			for i := 0; i < 600; i++ {
				eng.Step(dynamo.NewKeySet(dynamo.KeyD))

				p := disc.Phys.Pos
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X + disc.Diameter).To(BeNumerically("<=", 800))
				Expect(p.Y).To(BeNumerically(">=", disc.Diameter))
				Expect(p.Y + disc.Diameter).To(BeNumerically("<=", 600))
			}
		})

		It("comes to rest on the floor and can jump from there", func() {
			for i := 0; i < 600; i++ {
				eng.Step(dynamo.NewKeySet())
			}
			Expect(disc.Phys.Pos.Y + disc.Diameter).To(Equal(600.0))
			Expect(disc.Phys.Vel.Y).To(BeNumerically("<", 0))

			eng.Step(dynamo.NewKeySet(dynamo.KeyW))
			Expect(disc.Phys.Vel.Y).To(BeNumerically("<", -15))

			eng.Step(dynamo.NewKeySet(dynamo.KeyW))
			Expect(disc.Phys.Pos.Y + disc.Diameter).To(BeNumerically("<", 600))
		})
	})

	Context("rolling on the floor", func() {
		It("loses horizontal speed to ground drag", func() {
			for i := 0; i < 600; i++ {
				eng.Step(dynamo.NewKeySet())
			}
			disc.Phys.Vel.X = 5

			for i := 0; i < 10; i++ {
				eng.Step(dynamo.NewKeySet())
			}
			Expect(disc.Phys.Vel.X).To(BeNumerically("<", 5*0.99*0.9))
		})
	})

	Context("driven by a headless surface", func() {
		It("steps once per presented frame and honours escape", func() {
			surface := sim.NewHeadless(300).Hold(0, 30, dynamo.KeyA).Hold(200, 201, dynamo.KeyEscape)

			Expect(eng.Run(context.Background(), surface)).To(Succeed())
			Expect(surface.Presented()).To(Equal(200))
			Expect(eng.Frame()).To(Equal(200))
			Expect(disc.Phys.Pos.X).To(BeNumerically("<", 376))
		})
	})
})
