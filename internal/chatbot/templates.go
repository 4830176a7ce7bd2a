// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

package chatbot

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// advisoryContext carries the interpolation values for template answers.
type advisoryContext struct {
	Location string
	Season   string
}

// newAdvisoryContext builds the context for a request, defaulting the
// location to India.
func newAdvisoryContext(location string, now time.Time) advisoryContext {
	if location == "" {
		location = "India"
	}
	return advisoryContext{
		Location: location,
		Season:   SeasonForMonth(now.Month()),
	}
}

// SeasonForMonth maps a calendar month onto the Indian cultivation
// season. June through October is Kharif, November through March is
// Rabi, April and May are Zaid.
func SeasonForMonth(month time.Month) string {
	switch {
	case month >= time.June && month <= time.October:
		return "Kharif (Monsoon Season)"
	case month >= time.November || month <= time.March:
		return "Rabi (Winter Season)"
	default:
		return "Zaid (Summer Season)"
	}
}

// templateAnswer picks the knowledge-base answer matching the question
// topic. Topics are probed most-specific first.
func templateAnswer(question string, ctx advisoryContext) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "yellow") && (strings.Contains(q, "leaf") || strings.Contains(q, "leaves")):
		return yellowingLeavesAnswer()
	case strings.Contains(q, "pest"):
		return pestControlAnswer(ctx)
	case strings.Contains(q, "fertilizer"):
		return fertilizerAnswer(ctx)
	case strings.Contains(q, "water") || strings.Contains(q, "irrigation"):
		return irrigationAnswer(ctx)
	case strings.Contains(q, "harvest"):
		return harvestAnswer(ctx)
	case strings.Contains(q, "disease"):
		return diseaseAnswer()
	default:
		return generalAnswer(question, ctx)
	}
}

func yellowingLeavesAnswer() string {
	return `## Yellowing Leaves - Diagnosis & Treatment

### Common Causes & Solutions

| Nutrient | Symptoms | Solution |
|----------|----------|----------|
| **Nitrogen** | Lower leaves yellow first | Apply Urea @ 50kg/acre |
| **Iron** | Young leaves yellow, veins green | Spray FeSO4 @ 0.5% |
| **Magnesium** | Interveinal yellowing | Apply MgSO4 @ 25kg/acre |
| **Sulfur** | Overall pale yellow | Apply gypsum @ 200kg/acre |

### Water Issues
- **Overwatering**: yellow + wilting. Improve drainage immediately.
- **Underwatering**: yellow + crispy edges. Set a regular irrigation schedule.

### Immediate Action Plan
1. Test soil pH (should be 6.0-7.0 for most crops)
2. Check soil moisture at 6-inch depth
3. Apply foliar spray of micronutrients (2ml/L)
4. Add organic matter (compost/FYM @ 5 tons/acre)
5. Ensure proper field drainage

### Need More Help?
Contact your local **Krishi Vigyan Kendra** or call **Kisan Helpline: 1800-180-1551**

> **Pro Tip:** Regular soil testing every season helps avoid such issues.`
}

func pestControlAnswer(ctx advisoryContext) string {
	return fmt.Sprintf(`## Integrated Pest Management (IPM) Guide

### Current Season: %s

### Pest Identification First
1. Check timing: morning or evening activity?
2. Inspect damage: holes, wilting, or discoloration?
3. Look under leaves, in soil, on stems
4. Take photos for expert identification

### IPM Strategy
1. **Prevention**: crop rotation, remove residues, resistant varieties, field hygiene
2. **Monitoring**: scout fields twice weekly, use pheromone traps
3. **Biological control**: Trichogramma cards for borers, NPV for caterpillars, neem oil 5ml/L
4. **Chemical control** (last resort):

| Pest Type | Chemical | Dosage | Safety Period |
|-----------|----------|--------|---------------|
| Aphids | Imidacloprid | 0.5ml/L | 15 days |
| Caterpillars | Chlorantraniliprole | 0.3ml/L | 7 days |
| Whitefly | Thiamethoxam | 0.4g/L | 21 days |

### Spray Schedule
Morning (6-9 AM) or evening (4-7 PM) only. Never spray during flowering, wind, or before rain.

> "The best pesticide is the farmer's footsteps in the field."`, ctx.Season)
}

func fertilizerAnswer(ctx advisoryContext) string {
	return fmt.Sprintf(`## Fertilizer Management Guide

### Your Context
- Location: %s
- Season: %s

### NPK Requirements by Crop

| Crop | N (kg/ha) | P (kg/ha) | K (kg/ha) | Best Time |
|------|-----------|-----------|-----------|-----------|
| Rice | 120 | 60 | 40 | 3 splits |
| Wheat | 120 | 60 | 40 | 2-3 splits |
| Maize | 120 | 60 | 40 | 3 splits |
| Cotton | 150 | 60 | 60 | 3-4 splits |
| Pulses | 20 | 40 | 20 | Basal only |

### Application Schedule
- **Basal dose** (at sowing): 50%% N, 100%% P, 100%% K
- **First top dressing** (25-30 days): 25%% N
- **Second top dressing** (45-50 days): 25%% N

### Micronutrients
- Zinc sulfate: 25 kg/ha (rice, wheat)
- Boron: 10 kg/ha (pulses, oilseeds)

### Cost Optimization
1. Soil test first to save about 25%% on fertilizer costs
2. Apply vermicompost to cut chemical fertilizer by 30%%
3. Check the PM-KISAN scheme for subsidies

> **"Feed the soil, not just the plant."**`, ctx.Location, ctx.Season)
}

func irrigationAnswer(ctx advisoryContext) string {
	return fmt.Sprintf(`## Smart Irrigation Management

### Your Region: %s
### Current Season: %s

### Irrigation Methods Comparison

| Method | Water Saved | Cost | Best For |
|--------|-------------|------|----------|
| **Drip** | 40-60%% | High | Vegetables, fruits |
| **Sprinkler** | 30-40%% | Medium | Field crops |
| **Furrow** | 20-30%% | Low | Row crops |
| **Flood** | Baseline | Lowest | Rice, flat fields |

### When to Irrigate
1. Feel method: soil at 6" depth should form a ball
2. Tensiometer reading: 20-40 centibars
3. Leaf rolling: first sign in the afternoon

Best time is early morning (4-8 AM); avoid noon for high evaporation.

### Water Conservation
- Mulching saves about 25%% water
- Raised beds save about 30%%
- Laser leveling saves about 20%%

### Government Schemes
- **PM KUSUM**: solar pump subsidy (60%%)
- **PMKSY**: micro irrigation subsidy (55%%)

> "One deep irrigation is better than frequent shallow irrigation."`, ctx.Location, ctx.Season)
}

func harvestAnswer(ctx advisoryContext) string {
	return fmt.Sprintf(`## Harvesting Guide

### Current Season: %s

### Maturity Indicators
- Grain color change, 85-90%% leaf yellowing, stem drying
- Moisture content 18-22%%, grain hardness, black layer (maize)

### Crop-Specific Harvest Guide

| Crop | Days to Maturity | Moisture %% | Key Sign |
|------|------------------|------------|----------|
| Rice | 120-140 | 20-22%% | Golden yellow |
| Wheat | 110-120 | 18-20%% | Hard grain |
| Maize | 90-110 | 20-25%% | Black layer |
| Pulses | 80-90 | 15-18%% | Pod color |

### Post-Harvest Management
1. Dry immediately to 12-14%% moisture
2. Clean and grade for better price
3. Store in proper bags and godowns

Delayed harvest alone can cost 5-10%% of yield; total preventable losses run up to 20%%.

### Market Information
Check prices on the eNAM portal, your local mandi, or the APMC website.`, ctx.Season)
}

func diseaseAnswer() string {
	return `## Crop Disease Management

### Disease Identification Guide

| Symptom | Possible Disease | Affected Part |
|---------|------------------|---------------|
| Yellow spots | Leaf spot | Leaves |
| White powder | Powdery mildew | Leaves, stem |
| Brown patches | Blight | Leaves, fruits |
| Wilting | Wilt/root rot | Whole plant |
| Stunted growth | Viral disease | Whole plant |

### Management Strategy
1. **Prevention**: certified disease-free seeds, crop rotation, field sanitation, proper spacing
2. **Cultural control**: remove infected plants, burn residues, avoid overhead irrigation
3. **Biological control**: Trichoderma soil application @ 5kg/acre, Pseudomonas seed treatment
4. **Chemical control**:

| Disease Type | Chemical | Dosage | Interval |
|--------------|----------|--------|----------|
| Fungal | Mancozeb | 2g/L | 10-15 days |
| Bacterial | Streptocycline | 0.1g/L | 7-10 days |
| Viral | No direct control | - | Prevention only |

### Cost-Benefit
Prevention costs 300-500 INR/acre against a potential 20-50% yield loss if untreated.

> "A healthy crop is a profitable crop - invest in prevention!"`
}

func generalAnswer(question string, ctx advisoryContext) string {
	return fmt.Sprintf(`## Agricultural Guidance

### Your Farming Context
- **Location:** %s
- **Season:** %s

### Response to Your Query
Based on your question about *"%s"*, here is general agricultural guidance:

### Key Considerations
1. **Seasonal factors**: appropriate crop selection, weather-based planning, market demand
2. **Local conditions**: soil type, water availability, pest prevalence
3. **Economics**: input costs, expected yields, government support

### General Best Practices
- Test soil every season and maintain pH 6.0-7.5
- Use efficient irrigation and conserve moisture
- Follow Integrated Pest Management with regular monitoring
- Track market price trends and grade your produce

### Support Services
- **Kisan Call Center:** 1800-180-1551
- **Krishi Vigyan Kendra:** local KVK
- **PM-KISAN:** 6,000 INR/year direct benefit

Please ask about specific crop problems, cultivation practices, market information, or government schemes for more detailed help.`, ctx.Location, ctx.Season, truncate(question, 100))
}

// redirectAnswer is returned for questions outside agriculture.
func redirectAnswer(question string) string {
	return fmt.Sprintf(`## Agricultural Assistant

I notice your question *"%s"* doesn't appear to be related to agriculture or farming.

### I'm Specialized In:
- **Crop Management**: selection, planting, maintenance
- **Pest & Disease Control**: identification and treatment
- **Soil & Fertilizer**: nutrition management
- **Irrigation**: water management techniques
- **Harvest & Storage**: best practices
- **Market Information**: prices and trends
- **Government Schemes**: agricultural subsidies

### Try Asking About:
1. "Which crop should I plant this season?"
2. "How to control pests in my field?"
3. "What fertilizer to use for wheat?"
4. "When to harvest my rice crop?"

**I'm here to help with all your farming and agriculture needs!**`, truncate(question, 100))
}

// truncate shortens s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
