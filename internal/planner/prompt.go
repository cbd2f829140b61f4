package planner

import (
	"fmt"
	"strings"

	"yatra/internal/models/request_models"
	"yatra/pkg/utils"
)

// documentShape is the contract Recover depends on. Changing a field name here
// requires the same change in wireDocument.
const documentShape = `{
  "destination": "Full destination name",
  "destinationImage": "A URL for a high-quality Unsplash image of this destination",
  "dates": "Formatted travel dates",
  "itinerary": [
    {
      "day": 1,
      "activities": ["Activity 1", "Activity 2", "Activity 3"]
    },
    {
      "day": 2,
      "activities": ["Activity 1", "Activity 2", "Activity 3"]
    }
  ],
  "accommodations": "Recommended place to stay based on budget",
  "transportation": "Best ways to get around",
  "localTips": "Special insights about the destination",
  "estimatedCost": "₹30,000 - ₹60,000",
  "hotelRecommendations": [
    {
      "name": "Hotel Name",
      "description": "Brief description of the hotel",
      "image": "URL to a high-quality Unsplash image of this hotel or similar",
      "priceRange": "₹4,000 - ₹8,000 per night",
      "rating": 4.5,
      "amenities": ["Amenity 1", "Amenity 2", "Amenity 3"]
    }
  ]
}`

// BuildPrompt renders a trip request into the instruction sent to the text
// generator. The output depends only on req.
func BuildPrompt(req request_models.TripRequest) string {
	var b strings.Builder

	b.WriteString("You are a travel planning assistant.\n\n")
	b.WriteString("Create a detailed travel plan in JSON format for the following trip:\n")
	if start := strings.TrimSpace(req.StartDestination); start != "" {
		fmt.Fprintf(&b, "- Starting From: %s\n", start)
	}
	fmt.Fprintf(&b, "- Destination: %s\n", strings.TrimSpace(req.Destination))
	fmt.Fprintf(&b, "- Travel Dates: %s to %s\n", req.DepartureDate, req.ReturnDate)
	if days := utils.TripLengthDays(req.DepartureDate, req.ReturnDate); days > 0 {
		fmt.Fprintf(&b, "- Trip Length: %d day(s)\n", days)
	}
	fmt.Fprintf(&b, "- Number of Travelers: %d\n", req.Travelers)
	fmt.Fprintf(&b, "- Budget: %s (budget, medium, or luxury)\n", req.Budget)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))

	b.WriteString(`
IMPORTANT INSTRUCTIONS:
1. Your response must ONLY contain a valid JSON object
2. Do NOT include any text before or after the JSON
3. Do NOT use markdown formatting or code blocks
4. Ensure all values are properly escaped and the JSON is valid
5. Follow the exact structure shown below

JSON STRUCTURE:
`)
	b.WriteString(documentShape)

	b.WriteString("\n\nSpecific instructions:\n")
	b.WriteString("1. For image URLs, use Unsplash images with format: https://images.unsplash.com/photo-[ID]?q=80&w=1000\n")
	b.WriteString("2. Include specific attractions, restaurants, and activities that match the interests\n")
	b.WriteString("3. Make recommendations appropriate for the specified budget level\n")
	b.WriteString("4. \"itinerary\" must have one entry per day, numbered from 1 without gaps\n")
	fmt.Fprintf(&b, "5. For \"hotelRecommendations\", include 3 specific hotels in %s that match the budget level (%s)\n",
		strings.TrimSpace(req.Destination), req.Budget)
	b.WriteString("6. Rating values must be numbers between 3.0 and 5.0\n")
	b.WriteString("7. \"estimatedCost\" and \"priceRange\" must be numeric amounts in Indian Rupees using the ₹ symbol, " +
		"for example \"₹30,000 - ₹60,000\" and \"₹4,000 - ₹8,000 per night\". Never answer with symbols alone such as \"₹₹\"\n")
	b.WriteString("\nMOST IMPORTANTLY: respond with a single, valid JSON object and nothing else.\n")

	return b.String()
}
