// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Package chatbot answers farming questions. Questions are first
// classified as agricultural or not; agricultural ones are answered by
// the LLM when available and by the built-in knowledge templates
// otherwise.
package chatbot

import "strings"

// nonAgriculturalPatterns short-circuit classification: a question
// containing any of these is rejected before keyword matching runs.
var nonAgriculturalPatterns = []string{
	"what is the capital",
	"how to code",
	"how to cook",
	"tell me a joke",
	"best movies",
	"how to lose weight",
	"what is cryptocurrency",
	"what is machine learning",
	"how to fix",
	"what's the weather like",
	"weather today",
	"current weather",
	"python", "javascript", "html", "css", "programming",
	"software", "computer", "algorithm",
	"history", "geography", "mathematics", "physics", "chemistry",
	"literature", "politics", "economics",
}

// strongAgriKeywords mark a question as agricultural on their own.
var strongAgriKeywords = []string{
	// Crops
	"crop", "harvest", "yield", "cultivation", "farming", "agriculture",
	"rice", "wheat", "maize", "corn", "cotton", "sugarcane", "pulse",
	"vegetable", "tomato", "potato", "onion", "mango",
	// Practices
	"farm", "field", "irrigation", "fertilizer", "pesticide", "insecticide",
	"herbicide", "organic", "compost", "manure", "mulch", "tillage",
	"sowing", "planting", "soil",
	// Problems
	"pest", "weed", "blight", "deficiency", "nutrition", "stunted",
	// Seasons
	"kharif", "rabi", "zaid",
	// Market
	"mandi", "msp", "subsidy",
}

// contextualKeywords only count when agricultural context is present.
var contextualKeywords = []string{
	"plant", "seed", "disease", "yellow", "wilting", "rot", "growth",
	"attack", "water", "weather", "rain", "monsoon", "drought",
	"temperature", "climate", "season", "summer", "winter",
	"price", "market", "sell", "profit", "cost", "insurance", "loan",
	"scheme", "government",
}

// agriContextWords provide the context contextualKeywords need.
var agriContextWords = []string{
	"crop", "farm", "field", "agriculture", "cultivation",
	"harvest", "plant", "grow", "soil", "fertilizer",
}

// agriculturalPhrases are common phrasings that qualify on their own
// when a contextual keyword matched.
var agriculturalPhrases = []string{
	"plant", "plants have", "my crop", "in my field", "farming",
	"for crops", "crop disease", "plant disease", "soil health",
	"irrigation", "best time to plant", "when to harvest",
	"fertilizer for", "pest control", "crop yield",
}

// IsAgricultureRelated reports whether a question is in scope for the
// advisor. The deny list runs first so "tell me a joke" never reaches
// keyword matching.
func IsAgricultureRelated(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, pattern := range nonAgriculturalPatterns {
		if strings.Contains(q, pattern) {
			return false
		}
	}

	for _, keyword := range strongAgriKeywords {
		if strings.Contains(q, keyword) {
			return true
		}
	}

	matched := false
	for _, keyword := range contextualKeywords {
		if strings.Contains(q, keyword) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, word := range agriContextWords {
		if strings.Contains(q, word) {
			return true
		}
	}
	for _, phrase := range agriculturalPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

// questionCategories are checked in priority order; the first category
// with a keyword hit wins.
var questionCategories = []struct {
	name     string
	keywords []string
}{
	{"crop_selection", []string{"which crop", "what to plant", "crop selection", "best crop"}},
	{"pest_management", []string{"pest", "insect", "attack", "infestation"}},
	{"disease_control", []string{"disease", "yellow", "wilting", "rot", "fungus"}},
	{"fertilizer", []string{"fertilizer", "nutrient", "npk", "urea", "dap"}},
	{"irrigation", []string{"water", "irrigation", "drought", "moisture"}},
	{"harvest", []string{"harvest", "when to harvest", "maturity"}},
	{"market", []string{"price", "sell", "market", "mandi"}},
	{"weather", []string{"weather for crop", "rain for farming", "climate for agriculture"}},
	{"soil", []string{"soil", "ph", "testing", "quality"}},
	{"general", []string{"how to", "what is", "why", "when"}},
}

// Categorize assigns a question to an advisory category.
func Categorize(question string) string {
	if !IsAgricultureRelated(question) {
		return "non_agricultural"
	}

	q := strings.ToLower(question)
	for _, cat := range questionCategories {
		for _, keyword := range cat.keywords {
			if strings.Contains(q, keyword) {
				return cat.name
			}
		}
	}
	return "general_farming"
}
