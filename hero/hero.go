package hero

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Props configures the hero banner.
type Props struct {
	Title    string
	Subtitle string
	CTAText  string
	CTALink  string
}

func DefaultProps() Props {
	return Props{
		Title:    "Dominate Every Game with Premium Services",
		Subtitle: "Premium Accounts ⸱ Expert Boosting ⸱ Authentic Game Assets",
		CTAText:  "Shop Now",
		CTALink:  "/collections/all",
	}
}

// Slides are the rotating carousel backgrounds.
var Slides = []string{
	"https://images.unsplash.com/photo-1542751371-adc38448a05e?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
	"https://images.unsplash.com/photo-1511512578047-dfb367046420?ixlib=rb-4.0.3&auto=format&fit=crop&w=2071&q=80",
	"https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
	"https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=2025&q=80",
}

// Next is the slide after i in a carousel of n slides.
func Next(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (Clamp(i, n) + 1) % n
}

// Clamp maps any index onto [0, n).
func Clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

type Service struct {
	Title string
	Icon  string
}

var Services = []Service{
	{Title: "Accounts", Icon: "user"},
	{Title: "Boosting", Icon: "rocket"},
	{Title: "Items", Icon: "box"},
	{Title: "Currencies", Icon: "coins"},
	{Title: "Levelling", Icon: "upgrade"},
}

// Path is the landing route of a service category.
func (s Service) Path() string {
	return "/services/" + strings.ToLower(s.Title)
}

// Particle is one decorative dot of the hero background.
type Particle struct {
	Left     float64
	Top      float64
	Delay    float64
	Duration float64
}

// Style renders the particle's inline CSS.
func (p Particle) Style() string {
	return fmt.Sprintf("left: %.1f%%; top: %.1f%%; animation-delay: %.2fs; animation-duration: %.2fs",
		p.Left, p.Top, p.Delay, p.Duration)
}

// Particles scatters n particles deterministically for the given seed so
// repeated renders of a page agree.
func Particles(n int, seed uint64) []Particle {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			Left:     r.Float64() * 100,
			Top:      r.Float64() * 100,
			Delay:    r.Float64() * 3,
			Duration: 3 + r.Float64()*2,
		}
	}
	return particles
}
