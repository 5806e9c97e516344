package dashboard

import "math/rand"

// facts shown in the sidebar, one picked per page load.
var facts = []string{
	"🌍 Every ton of recycled paper saves 17 trees.",
	"💡 Renewable energy creates 5x more jobs than fossil fuels.",
	"🌱 Urban forests can cool cities by up to 5°C.",
	"🚰 Saving one liter of water also saves energy used to pump it.",
	"♻️ Recycling aluminum saves 95% of the energy needed to make new aluminum.",
}

// Facts returns the sustainability facts in fixed order.
func Facts() []string {
	out := make([]string, len(facts))
	copy(out, facts)
	return out
}

// RandomFact picks one fact for the sidebar.
func RandomFact() string {
	return facts[rand.Intn(len(facts))]
}
