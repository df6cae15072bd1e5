// internal/referencedata/data.go
package referencedata

import "edupath-server/internal/models"

// DefaultImage is used when a record has no picture of its own and for
// synthesized placeholder records.
const DefaultImage = "/images/universities/default.jpg"

var universities = []models.University{
	{ID: "harvard", Name: "Harvard University", Country: "USA", Location: "Cambridge, Massachusetts", Ranking: 1, Tuition: "$54,000 per year", Programs: []string{"Computer Science", "Business Administration", "Law", "Medicine", "Economics"}, Image: "/images/universities/harvard.jpg"},
	{ID: "mit", Name: "Massachusetts Institute of Technology", Country: "USA", Location: "Cambridge, Massachusetts", Ranking: 2, Tuition: "$57,000 per year", Programs: []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering", "Physics", "Mathematics"}, Image: "/images/universities/mit.jpg"},
	{ID: "stanford", Name: "Stanford University", Country: "USA", Location: "Stanford, California", Ranking: 3, Tuition: "$56,000 per year", Programs: []string{"Computer Science", "Data Science", "Business Administration", "Psychology"}, Image: "/images/universities/stanford.jpg"},
	{ID: "oxford", Name: "University of Oxford", Country: "UK", Location: "Oxford, England", Ranking: 4, Tuition: "£28,000 per year", Programs: []string{"Law", "Philosophy", "Economics", "Computer Science", "Medicine"}, Image: "/images/universities/oxford.jpg"},
	{ID: "cambridge", Name: "University of Cambridge", Country: "UK", Location: "Cambridge, England", Ranking: 5, Tuition: "£30,000 per year", Programs: []string{"Mathematics", "Natural Sciences", "Engineering", "Computer Science"}, Image: "/images/universities/cambridge.jpg"},
	{ID: "caltech", Name: "California Institute of Technology", Country: "USA", Location: "Pasadena, California", Ranking: 6, Tuition: "$58,000 per year", Programs: []string{"Physics", "Aerospace Engineering", "Computer Science", "Chemistry"}, Image: "/images/universities/caltech.jpg"},
	{ID: "eth-zurich", Name: "ETH Zurich", Country: "Switzerland", Location: "Zurich", Ranking: 7, Tuition: "CHF 1,460 per year", Programs: []string{"Mechanical Engineering", "Computer Science", "Architecture", "Mathematics"}, Image: "/images/universities/eth.jpg"},
	{ID: "imperial", Name: "Imperial College London", Country: "UK", Location: "London, England", Ranking: 8, Tuition: "£35,000 per year", Programs: []string{"Medicine", "Engineering", "Computer Science", "Business Administration"}, Image: "/images/universities/imperial.jpg"},
	{ID: "ucl", Name: "University College London", Country: "UK", Location: "London, England", Ranking: 9, Tuition: "£26,000 per year", Programs: []string{"Architecture", "Law", "Psychology", "Economics"}, Image: "/images/universities/ucl.jpg"},
	{ID: "toronto", Name: "University of Toronto", Country: "Canada", Location: "Toronto, Ontario", Ranking: 21, Tuition: "CAD 58,000 per year", Programs: []string{"Computer Science", "Medicine", "Business Administration", "Engineering"}, Image: "/images/universities/toronto.jpg"},
	{ID: "mcgill", Name: "McGill University", Country: "Canada", Location: "Montreal, Quebec", Ranking: 30, Tuition: "CAD 45,000 per year", Programs: []string{"Medicine", "Law", "Computer Science", "Agriculture"}, Image: "/images/universities/mcgill.jpg"},
	{ID: "ubc", Name: "University of British Columbia", Country: "Canada", Location: "Vancouver, British Columbia", Ranking: 34, Tuition: "CAD 42,000 per year", Programs: []string{"Forestry", "Computer Science", "Business Administration", "Oceanography"}, Image: "/images/universities/ubc.jpg"},
	{ID: "melbourne", Name: "University of Melbourne", Country: "Australia", Location: "Melbourne, Victoria", Ranking: 14, Tuition: "AUD 45,000 per year", Programs: []string{"Medicine", "Law", "Computer Science", "Biomedical Science"}, Image: "/images/universities/melbourne.jpg"},
	{ID: "sydney", Name: "University of Sydney", Country: "Australia", Location: "Sydney, New South Wales", Ranking: 19, Tuition: "AUD 48,000 per year", Programs: []string{"Business Administration", "Engineering", "Architecture", "Veterinary Science"}, Image: "/images/universities/sydney.jpg"},
	{ID: "anu", Name: "Australian National University", Country: "Australia", Location: "Canberra", Ranking: 34, Tuition: "AUD 43,000 per year", Programs: []string{"International Relations", "Political Science", "Astronomy", "Computer Science"}, Image: "/images/universities/anu.jpg"},
	{ID: "tum", Name: "Technical University of Munich", Country: "Germany", Location: "Munich, Bavaria", Ranking: 37, Tuition: "€300 per year", Programs: []string{"Mechanical Engineering", "Computer Science", "Electrical Engineering", "Physics"}, Image: "/images/universities/tum.jpg"},
	{ID: "heidelberg", Name: "Heidelberg University", Country: "Germany", Location: "Heidelberg, Baden-Wurttemberg", Ranking: 87, Tuition: "€350 per year", Programs: []string{"Medicine", "Physics", "Molecular Biology", "Philosophy"}, Image: "/images/universities/heidelberg.jpg"},
	{ID: "nus", Name: "National University of Singapore", Country: "Singapore", Location: "Singapore", Ranking: 8, Tuition: "SGD 38,000 per year", Programs: []string{"Computer Science", "Business Administration", "Engineering", "Pharmacy"}, Image: "/images/universities/nus.jpg"},
	{ID: "ntu", Name: "Nanyang Technological University", Country: "Singapore", Location: "Singapore", Ranking: 26, Tuition: "SGD 36,000 per year", Programs: []string{"Materials Science", "Computer Science", "Communication Studies"}, Image: "/images/universities/ntu.jpg"},
	{ID: "auckland", Name: "University of Auckland", Country: "New Zealand", Location: "Auckland", Ranking: 68, Tuition: "NZD 40,000 per year", Programs: []string{"Engineering", "Business Administration", "Computer Science", "Marine Science"}, Image: "/images/universities/auckland.jpg"},
	{ID: "trinity-dublin", Name: "Trinity College Dublin", Country: "Ireland", Location: "Dublin", Ranking: 81, Tuition: "€25,000 per year", Programs: []string{"Literature", "Computer Science", "Immunology", "Business Administration"}, Image: "/images/universities/trinity.jpg"},
	{ID: "amsterdam", Name: "University of Amsterdam", Country: "Netherlands", Location: "Amsterdam", Ranking: 53, Tuition: "€15,000 per year", Programs: []string{"Psychology", "Economics", "Artificial Intelligence", "Media Studies"}, Image: "/images/universities/amsterdam.jpg"},
}

var courses = []models.Course{
	{ID: "cs-bsc", Name: "Computer Science", Field: "Technology", Level: "Bachelors", Duration: "4 years", Skills: []string{"Programming", "Algorithms", "Data Structures"}},
	{ID: "ds-msc", Name: "Data Science", Field: "Technology", Level: "Masters", Duration: "2 years", Skills: []string{"Machine Learning", "Statistics", "Python"}},
	{ID: "ai-msc", Name: "Artificial Intelligence", Field: "Technology", Level: "Masters", Duration: "2 years", Skills: []string{"Deep Learning", "Natural Language Processing", "Robotics"}},
	{ID: "cyber-msc", Name: "Cybersecurity", Field: "Technology", Level: "Masters", Duration: "2 years", Skills: []string{"Network Security", "Cryptography", "Ethical Hacking"}},
	{ID: "mba", Name: "Business Administration", Field: "Business", Level: "Masters", Duration: "2 years", Skills: []string{"Management", "Finance", "Strategy"}},
	{ID: "fin-msc", Name: "Finance", Field: "Business", Level: "Masters", Duration: "1 year", Skills: []string{"Accounting", "Investment Analysis", "Risk Management"}},
	{ID: "mkt-bsc", Name: "Marketing", Field: "Business", Level: "Bachelors", Duration: "3 years", Skills: []string{"Digital Marketing", "Consumer Behaviour", "Branding"}},
	{ID: "mech-beng", Name: "Mechanical Engineering", Field: "Engineering", Level: "Bachelors", Duration: "4 years", Skills: []string{"Thermodynamics", "CAD", "Materials"}},
	{ID: "elec-beng", Name: "Electrical Engineering", Field: "Engineering", Level: "Bachelors", Duration: "4 years", Skills: []string{"Circuits", "Signal Processing", "Embedded Systems"}},
	{ID: "civil-beng", Name: "Civil Engineering", Field: "Engineering", Level: "Bachelors", Duration: "4 years", Skills: []string{"Structural Analysis", "Geotechnics", "Project Management"}},
	{ID: "med-mbbs", Name: "Medicine", Field: "Health Sciences", Level: "Bachelors", Duration: "5 years", Skills: []string{"Anatomy", "Clinical Practice", "Pharmacology"}},
	{ID: "nursing-bsc", Name: "Nursing", Field: "Health Sciences", Level: "Bachelors", Duration: "3 years", Skills: []string{"Patient Care", "Pharmacology", "Public Health"}},
	{ID: "law-llb", Name: "Law", Field: "Law", Level: "Bachelors", Duration: "3 years", Skills: []string{"Contract Law", "Legal Writing", "Constitutional Law"}},
	{ID: "psych-bsc", Name: "Psychology", Field: "Social Sciences", Level: "Bachelors", Duration: "3 years", Skills: []string{"Research Methods", "Cognitive Science", "Counselling"}},
	{ID: "econ-bsc", Name: "Economics", Field: "Social Sciences", Level: "Bachelors", Duration: "3 years", Skills: []string{"Econometrics", "Microeconomics", "Macroeconomics"}},
	{ID: "arch-barch", Name: "Architecture", Field: "Design", Level: "Bachelors", Duration: "5 years", Skills: []string{"Design Studio", "Urban Planning", "Building Technology"}},
}

var countries = []models.Country{
	{Name: "USA", Code: "US", AvgTuition: "$35,000 per year", AvgLivingCost: "$1,500 per month", PopularCities: []string{"New York", "Boston", "San Francisco", "Chicago"}, Image: "/images/countries/usa.jpg"},
	{Name: "UK", Code: "GB", AvgTuition: "£22,000 per year", AvgLivingCost: "£1,200 per month", PopularCities: []string{"London", "Manchester", "Edinburgh", "Birmingham"}, Image: "/images/countries/uk.jpg"},
	{Name: "Canada", Code: "CA", AvgTuition: "CAD 30,000 per year", AvgLivingCost: "CAD 1,300 per month", PopularCities: []string{"Toronto", "Vancouver", "Montreal", "Calgary"}, Image: "/images/countries/canada.jpg"},
	{Name: "Australia", Code: "AU", AvgTuition: "AUD 32,000 per year", AvgLivingCost: "AUD 1,800 per month", PopularCities: []string{"Sydney", "Melbourne", "Brisbane", "Perth"}, Image: "/images/countries/australia.jpg"},
	{Name: "Germany", Code: "DE", AvgTuition: "€500 per year", AvgLivingCost: "€950 per month", PopularCities: []string{"Berlin", "Munich", "Hamburg", "Frankfurt"}, Image: "/images/countries/germany.jpg"},
	{Name: "Ireland", Code: "IE", AvgTuition: "€15,000 per year", AvgLivingCost: "€1,100 per month", PopularCities: []string{"Dublin", "Cork", "Galway"}, Image: "/images/countries/ireland.jpg"},
	{Name: "Netherlands", Code: "NL", AvgTuition: "€12,000 per year", AvgLivingCost: "€1,200 per month", PopularCities: []string{"Amsterdam", "Rotterdam", "Utrecht"}, Image: "/images/countries/netherlands.jpg"},
	{Name: "Singapore", Code: "SG", AvgTuition: "SGD 30,000 per year", AvgLivingCost: "SGD 2,000 per month", PopularCities: []string{"Singapore"}, Image: "/images/countries/singapore.jpg"},
	{Name: "New Zealand", Code: "NZ", AvgTuition: "NZD 28,000 per year", AvgLivingCost: "NZD 1,600 per month", PopularCities: []string{"Auckland", "Wellington", "Christchurch"}, Image: "/images/countries/nz.jpg"},
	{Name: "Switzerland", Code: "CH", AvgTuition: "CHF 1,500 per year", AvgLivingCost: "CHF 2,200 per month", PopularCities: []string{"Zurich", "Geneva", "Lausanne"}, Image: "/images/countries/switzerland.jpg"},
}
