// Package corpus holds the labeled reference examples used for similarity
// ranking and the functions that query them. The table is compiled in and
// never mutated after process start.
package corpus

import "github.com/niticheck/classifier/internal/domain"

// policyExamples is the reference corpus: 18 real, 16 fake, 16 not-policy.
// Texts are in English or Nepali; keywords are hand-tagged diagnostic
// substrings, matched case-insensitively against input text.
var policyExamples = []domain.LabeledExample{
	// Real policies
	{
		ID:       "N001",
		Label:    domain.LabelReal,
		Text:     "Nepal government allocates Rs 1647 billion budget for fiscal year 2081/82 with focus on infrastructure development and education sector",
		Source:   "government_website",
		Language: "English",
		Category: "budget",
		Keywords: []string{"nepal government", "budget", "fiscal year", "infrastructure", "education"},
	},
	{
		ID:       "N002",
		Label:    domain.LabelReal,
		Text:     "Ministry of Education announces revised School Sector Development Plan with new teacher qualification requirements starting from academic year 2081",
		Source:   "ministry_document",
		Language: "English",
		Category: "education",
		Keywords: []string{"ministry of education", "school sector", "teacher qualification", "academic year"},
	},
	{
		ID:       "N003",
		Label:    domain.LabelReal,
		Text:     "Department of Agriculture launches subsidized fertilizer distribution program for registered farmers with 50% discount on DAP fertilizer",
		Source:   "department_notice",
		Language: "English",
		Category: "agriculture",
		Keywords: []string{"department of agriculture", "subsidized fertilizer", "registered farmers", "dap fertilizer"},
	},
	{
		ID:       "N004",
		Label:    domain.LabelReal,
		Text:     "Ministry of Finance releases guidelines for digital payment system implementation across all government offices by end of fiscal year",
		Source:   "government_website",
		Language: "English",
		Category: "digital_governance",
		Keywords: []string{"ministry of finance", "digital payment", "government offices", "fiscal year"},
	},
	{
		ID:       "N005",
		Label:    domain.LabelReal,
		Text:     "Nepal Law Commission publishes updated legal framework for cyber crime prevention and digital security measures",
		Source:   "legal_document",
		Language: "English",
		Category: "cybersecurity",
		Keywords: []string{"nepal law commission", "legal framework", "cyber crime", "digital security"},
	},
	{
		ID:       "N016",
		Label:    domain.LabelReal,
		Text:     "सरकारले आगामी आर्थिक वर्ष २०८१/८२ मा शिक्षा क्षेत्रमा रु १५ प्रतिशत बजेट विनियोजन गर्ने निर्णय गरेको छ",
		Source:   "government_website",
		Language: "Nepali",
		Category: "education",
		Keywords: []string{"सरकारले", "आर्थिक वर्ष", "शिक्षा क्षेत्रमा", "बजेट", "निर्णय"},
	},
	{
		ID:       "N017",
		Label:    domain.LabelReal,
		Text:     "स्वास्थ्य तथा जनसंख्या मन्त्रालयले कोभिड-१९ विरुद्धको खोप अभियान आगामी महिनादेखि सुरु गर्ने घोषणा गरेको छ",
		Source:   "ministry_document",
		Language: "Nepali",
		Category: "health",
		Keywords: []string{"स्वास्थ्य मन्त्रालय", "कोभिड", "खोप अभियान", "घोषणा"},
	},
	{
		ID:       "N018",
		Label:    domain.LabelReal,
		Text:     "कृषि तथा पशुपंक्षी विकास मन्त्रालयले किसानहरूलाई अनुदानमा बीउ वितरण कार्यक्रम सञ्चालन गर्ने जनाएको छ",
		Source:   "department_notice",
		Language: "Nepali",
		Category: "agriculture",
		Keywords: []string{"कृषि मन्त्रालय", "किसानहरूलाई", "अनुदानमा", "बीउ वितरण"},
	},
	{
		ID:       "N023",
		Label:    domain.LabelReal,
		Text:     "Ministry of Foreign Affairs announces new visa policy for tourists visiting Nepal during Visit Nepal 2024 campaign with simplified procedures",
		Source:   "government_website",
		Language: "English",
		Category: "tourism",
		Keywords: []string{"ministry of foreign affairs", "visa policy", "visit nepal 2024", "simplified procedures"},
	},
	{
		ID:       "N024",
		Label:    domain.LabelReal,
		Text:     "National Planning Commission releases 16th periodic development plan focusing on economic growth and poverty reduction strategies",
		Source:   "planning_document",
		Language: "English",
		Category: "development",
		Keywords: []string{"national planning commission", "development plan", "economic growth", "poverty reduction"},
	},
	{
		ID:       "N025",
		Label:    domain.LabelReal,
		Text:     "Department of Roads announces completion of Melamchi-Kathmandu tunnel project reducing travel time by 2 hours for residents",
		Source:   "infrastructure_news",
		Language: "English",
		Category: "infrastructure",
		Keywords: []string{"department of roads", "melamchi kathmandu tunnel", "travel time", "infrastructure"},
	},
	{
		ID:       "N031",
		Label:    domain.LabelReal,
		Text:     "प्रधानमन्त्री रोजगार कार्यक्रमअन्तर्गत ५० हजार युवाहरूलाई रोजगारी प्रदान गर्ने सरकारको घोषणा",
		Source:   "government_website",
		Language: "Nepali",
		Category: "employment",
		Keywords: []string{"प्रधानमन्त्री", "रोजगार कार्यक्रम", "युवाहरूलाई", "सरकारको घोषणा"},
	},
	{
		ID:       "N032",
		Label:    domain.LabelReal,
		Text:     "गृह मन्त्रालयले नयाँ पासपोर्ट वितरण नीति घोषणा गर्दै अनलाइन आवेदन प्रक्रिया सुरु गरेको छ",
		Source:   "ministry_document",
		Language: "Nepali",
		Category: "passport",
		Keywords: []string{"गृह मन्त्रालय", "पासपोर्ट वितरण", "अनलाइन आवेदन", "प्रक्रिया"},
	},
	{
		ID:       "N037",
		Label:    domain.LabelReal,
		Text:     "Office of Prime Minister and Council of Ministers releases annual progress report showing 85% completion of infrastructure projects",
		Source:   "government_report",
		Language: "English",
		Category: "infrastructure",
		Keywords: []string{"prime minister office", "council of ministers", "annual progress", "infrastructure projects"},
	},
	{
		ID:       "N038",
		Label:    domain.LabelReal,
		Text:     "Supreme Court of Nepal issues new guidelines for fast-track courts to reduce case backlog and improve justice delivery system",
		Source:   "judicial_document",
		Language: "English",
		Category: "judiciary",
		Keywords: []string{"supreme court", "guidelines", "fast-track courts", "justice delivery"},
	},
	{
		ID:       "N039",
		Label:    domain.LabelReal,
		Text:     "Ministry of Culture Tourism and Civil Aviation announces heritage site restoration project with UNESCO funding worth 50 million dollars",
		Source:   "ministry_announcement",
		Language: "English",
		Category: "heritage",
		Keywords: []string{"ministry of culture", "heritage site", "unesco funding", "restoration project"},
	},
	{
		ID:       "N045",
		Label:    domain.LabelReal,
		Text:     "कानुन न्याय तथा संसदीय मामिला मन्त्रालयले नयाँ कानुनी ढाँचा तयार गरी संसदमा पेश गर्ने तयारी गरेको छ",
		Source:   "legal_document",
		Language: "Nepali",
		Category: "legal",
		Keywords: []string{"कानुन न्याय मन्त्रालय", "कानुनी ढाँचा", "संसदमा पेश", "तयारी"},
	},
	{
		ID:       "N046",
		Label:    domain.LabelReal,
		Text:     "अर्थ मन्त्रालयले कर छुटको नयाँ नीति ल्याउने घोषणा गर्दै साना उद्योगीहरूलाई प्राथमिकता दिने जनाएको छ",
		Source:   "ministry_policy",
		Language: "Nepali",
		Category: "tax_policy",
		Keywords: []string{"अर्थ मन्त्रालय", "कर छुट", "साना उद्योगी", "प्राथमिकता"},
	},

	// Fake policies
	{
		ID:       "N006",
		Label:    domain.LabelFake,
		Text:     "URGENT! Government of Nepal announces immediate Rs 25000 cash relief for ALL citizens! No paperwork needed! Send citizenship number to 98765-43210",
		Source:   "whatsapp_forward",
		Language: "English",
		Category: "financial_scam",
		Keywords: []string{"urgent", "immediate", "no paperwork needed", "send citizenship number", "cash relief"},
	},
	{
		ID:       "N007",
		Label:    domain.LabelFake,
		Text:     "Breaking News! Ministry of Education will give FREE laptops to all students who share this message 100 times on WhatsApp! Hurry up only 48 hours left!",
		Source:   "social_media",
		Language: "English",
		Category: "education_scam",
		Keywords: []string{"breaking news", "free laptops", "share this message", "hurry up", "48 hours left"},
	},
	{
		ID:       "N008",
		Label:    domain.LabelFake,
		Text:     "Secret policy leaked! All taxes cancelled for next 6 months due to economic crisis! Share immediately before government deletes this information!",
		Source:   "fake_news_site",
		Language: "English",
		Category: "tax_scam",
		Keywords: []string{"secret policy leaked", "taxes cancelled", "share immediately", "government deletes", "economic crisis"},
	},
	{
		ID:       "N009",
		Label:    domain.LabelFake,
		Text:     "Amazing announcement from Nepal Telecom! Free WiFi for all citizens who forward this message to 20 contacts! Limited time offer expires today!",
		Source:   "social_media",
		Language: "English",
		Category: "telecom_scam",
		Keywords: []string{"amazing announcement", "free wifi", "forward this message", "limited time offer", "expires today"},
	},
	{
		ID:       "N010",
		Label:    domain.LabelFake,
		Text:     "Shocking! Prime Minister announces Rs 1 lakh for every household affected by COVID! Just click this link and register: bit.ly/nepal-covid-relief",
		Source:   "social_media",
		Language: "English",
		Category: "covid_scam",
		Keywords: []string{"shocking", "prime minister announces", "click this link", "register", "covid relief"},
	},
	{
		ID:       "N019",
		Label:    domain.LabelFake,
		Text:     "तत्काल! सरकारले सबै नागरिकलाई रु २५ हजार नगद सहायता दिने निर्णय गरेको छ! नागरिकता नम्बर पठाउनुहोस् ९८७६५-४३२१०",
		Source:   "whatsapp_forward",
		Language: "Nepali",
		Category: "financial_scam",
		Keywords: []string{"तत्काल", "नगद सहायता", "नागरिकता नम्बर", "पठाउनुहोस्"},
	},
	{
		ID:       "N020",
		Label:    domain.LabelFake,
		Text:     "शिक्षा मन्त्रालयले सबै विद्यार्थीलाई निःशुल्क ल्यापटप दिने घोषणा गरेको छ! यो सन्देश १०० जनालाई पठाउनुहोस्!",
		Source:   "social_media",
		Language: "Nepali",
		Category: "education_scam",
		Keywords: []string{"निःशुल्क ल्यापटप", "यो सन्देश", "१०० जनालाई", "पठाउनुहोस्"},
	},
	{
		ID:       "N026",
		Label:    domain.LabelFake,
		Text:     "Fake alert! Nepal Rastra Bank will freeze all bank accounts tomorrow! Withdraw your money immediately! Share this urgent message to save others!",
		Source:   "social_media",
		Language: "English",
		Category: "banking_scam",
		Keywords: []string{"fake alert", "freeze all bank accounts", "withdraw immediately", "share this urgent", "save others"},
	},
	{
		ID:       "N027",
		Label:    domain.LabelFake,
		Text:     "Government secretly planning to ban all social media platforms next month! VPN will be illegal! Share before this gets deleted!",
		Source:   "fake_news_site",
		Language: "English",
		Category: "social_media_scam",
		Keywords: []string{"secretly planning", "ban all social media", "vpn illegal", "share before deleted"},
	},
	{
		ID:       "N028",
		Label:    domain.LabelFake,
		Text:     "Exclusive offer from Nepal Electricity Authority! Free electricity for 6 months for customers who forward this to 50 contacts!",
		Source:   "social_media",
		Language: "English",
		Category: "utility_scam",
		Keywords: []string{"exclusive offer", "free electricity", "forward this to", "50 contacts"},
	},
	{
		ID:       "N033",
		Label:    domain.LabelFake,
		Text:     "खतरनाक! सरकारले सबै बैंक खाता बन्द गर्ने निर्णय गरेको छ! तुरुन्त पैसा निकाल्नुहोस्! यो सन्देश सबैलाई पठाउनुहोस्!",
		Source:   "whatsapp_forward",
		Language: "Nepali",
		Category: "banking_scam",
		Keywords: []string{"खतरनाक", "बैंक खाता बन्द", "तुरुन्त पैसा", "सबैलाई पठाउनुहोस्"},
	},
	{
		ID:       "N034",
		Label:    domain.LabelFake,
		Text:     "गोप्य जानकारी! सरकारले फेसबुक र ह्वाट्सएप प्रतिबन्ध गर्ने तयारी गरिरहेको छ! यो मेसेज डिलिट हुनु अघि सेयर गर्नुहोस्!",
		Source:   "social_media",
		Language: "Nepali",
		Category: "social_media_scam",
		Keywords: []string{"गोप्य जानकारी", "प्रतिबन्ध गर्ने", "डिलिट हुनु अघि", "सेयर गर्नुहोस्"},
	},
	{
		ID:       "N040",
		Label:    domain.LabelFake,
		Text:     "Breaking fake news! All students will get 100% scholarship if they don't attend school tomorrow! Ministry of Education confirms this policy!",
		Source:   "fake_news_site",
		Language: "English",
		Category: "education_scam",
		Keywords: []string{"breaking fake news", "100% scholarship", "dont attend school", "ministry confirms"},
	},
	{
		ID:       "N041",
		Label:    domain.LabelFake,
		Text:     "Government will pay Rs 1000 per day to everyone who stays home during lockdown! Register by calling 16600! Offer valid till midnight!",
		Source:   "social_media",
		Language: "English",
		Category: "covid_scam",
		Keywords: []string{"pay rs 1000 per day", "stays home", "register by calling", "valid till midnight"},
	},
	{
		ID:       "N047",
		Label:    domain.LabelFake,
		Text:     "झुटो खबर! सरकारले भोलिदेखि सबै पसल बन्द गर्ने आदेश दिएको छ! यो सन्देश सबै व्यापारीहरूलाई पठाउनुहोस्!",
		Source:   "whatsapp_forward",
		Language: "Nepali",
		Category: "business_scam",
		Keywords: []string{"झुटो खबर", "सबै पसल बन्द", "आदेश दिएको", "व्यापारीहरूलाई"},
	},
	{
		ID:       "N048",
		Label:    domain.LabelFake,
		Text:     "चौंकाउने! प्रधानमन्त्रीले राजीनामा दिने घोषणा गरेको छ! यो गोप्य समाचार मिडियामा आउनु अघि नै सेयर गर्नुहोस्!",
		Source:   "fake_news_site",
		Language: "Nepali",
		Category: "political_scam",
		Keywords: []string{"चौंकाउने", "राजीनामा दिने", "गोप्य समाचार", "आउनु अघि नै"},
	},

	// Not policy
	{
		ID:       "N011",
		Label:    domain.LabelNotPolicy,
		Text:     "Nepal Cricket Team defeats Malaysia by 6 wickets in ACC Men's Premier Cup held in Oman yesterday with captain Rohit Paudel scoring 89 not out",
		Source:   "sports_news",
		Language: "English",
		Category: "sports",
		Keywords: []string{"cricket team", "defeats malaysia", "acc premier cup", "rohit paudel", "scoring"},
	},
	{
		ID:       "N012",
		Label:    domain.LabelNotPolicy,
		Text:     "Heavy rainfall expected to continue for next 3 days across central and eastern regions according to Department of Hydrology and Meteorology",
		Source:   "weather_report",
		Language: "English",
		Category: "weather",
		Keywords: []string{"heavy rainfall", "next 3 days", "central eastern", "hydrology meteorology"},
	},
	{
		ID:       "N013",
		Label:    domain.LabelNotPolicy,
		Text:     "New shopping mall opens in Durbar Marg featuring international brands and food court with capacity for 500 customers",
		Source:   "business_news",
		Language: "English",
		Category: "business",
		Keywords: []string{"shopping mall", "durbar marg", "international brands", "food court", "customers"},
	},
	{
		ID:       "N014",
		Label:    domain.LabelNotPolicy,
		Text:     "Famous Bollywood actor Shah Rukh Khan spotted at Tribhuvan International Airport for upcoming movie shooting in Kathmandu valley",
		Source:   "entertainment_news",
		Language: "English",
		Category: "entertainment",
		Keywords: []string{"bollywood actor", "shah rukh khan", "airport", "movie shooting", "kathmandu valley"},
	},
	{
		ID:       "N015",
		Label:    domain.LabelNotPolicy,
		Text:     "Traffic police implements new digital challan system in Kathmandu valley to reduce congestion and improve road safety measures",
		Source:   "traffic_news",
		Language: "English",
		Category: "traffic",
		Keywords: []string{"traffic police", "digital challan", "reduce congestion", "road safety"},
	},
	{
		ID:       "N021",
		Label:    domain.LabelNotPolicy,
		Text:     "नेपाल क्रिकेट टोलीले मलेसियालाई ६ विकेटले पराजित गर्दै एसीसी प्रिमियर कपमा विजयी सुरुवात गरेको छ",
		Source:   "sports_news",
		Language: "Nepali",
		Category: "sports",
		Keywords: []string{"क्रिकेट टोली", "मलेसियालाई", "विकेटले", "एसीसी", "विजयी सुरुवात"},
	},
	{
		ID:       "N022",
		Label:    domain.LabelNotPolicy,
		Text:     "काठमाडौं उपत्यकामा आगामी ३ दिन भारी वर्षाको सम्भावना रहेको मौसम पूर्वानुमान महिशाखाले जनाएको छ",
		Source:   "weather_report",
		Language: "Nepali",
		Category: "weather",
		Keywords: []string{"काठमाडौं उपत्यका", "भारी वर्षा", "सम्भावना", "मौसम पूर्वानुमान"},
	},
	{
		ID:       "N029",
		Label:    domain.LabelNotPolicy,
		Text:     "Local artist wins international painting competition representing Nepal at UNESCO cultural festival held in Paris last week",
		Source:   "arts_news",
		Language: "English",
		Category: "arts",
		Keywords: []string{"local artist", "painting competition", "unesco cultural", "paris", "last week"},
	},
	{
		ID:       "N030",
		Label:    domain.LabelNotPolicy,
		Text:     "Kathmandu Metropolitan City launches new waste management system with color-coded bins for effective segregation across all wards",
		Source:   "municipal_news",
		Language: "English",
		Category: "municipal",
		Keywords: []string{"metropolitan city", "waste management", "color-coded bins", "segregation", "wards"},
	},
	{
		ID:       "N035",
		Label:    domain.LabelNotPolicy,
		Text:     "प्रसिद्ध गायक नारायण गोपालको नयाँ गीत रिलिज भएको छ जुन युट्यूबमा लाखौं भ्यू पाएको छ",
		Source:   "entertainment_news",
		Language: "Nepali",
		Category: "entertainment",
		Keywords: []string{"प्रसिद्ध गायक", "नारायण गोपाल", "नयाँ गीत", "युट्यूबमा", "भ्यू"},
	},
	{
		ID:       "N036",
		Label:    domain.LabelNotPolicy,
		Text:     "हिमालयन बैंकले नयाँ डिजिटल बैंकिङ सेवा सुरु गर्दै ग्राहकहरूलाई २४ घण्टा सेवा प्रदान गर्ने घोषणा गरेको छ",
		Source:   "banking_news",
		Language: "Nepali",
		Category: "banking",
		Keywords: []string{"हिमालयन बैंक", "डिजिटल बैंकिङ", "ग्राहकहरूलाई", "२४ घण्टा"},
	},
	{
		ID:       "N042",
		Label:    domain.LabelNotPolicy,
		Text:     "Nepal Police arrests international drug smuggling ring with 50 kg heroin seized at Tribhuvan International Airport during routine checking",
		Source:   "crime_news",
		Language: "English",
		Category: "crime",
		Keywords: []string{"nepal police arrests", "drug smuggling", "heroin seized", "airport", "routine checking"},
	},
	{
		ID:       "N043",
		Label:    domain.LabelNotPolicy,
		Text:     "Everest Bank launches new mobile banking app with enhanced security features and user-friendly interface for all customers",
		Source:   "financial_news",
		Language: "English",
		Category: "banking",
		Keywords: []string{"everest bank", "mobile banking app", "security features", "user-friendly", "customers"},
	},
	{
		ID:       "N044",
		Label:    domain.LabelNotPolicy,
		Text:     "Famous chef Gordon Ramsay visits Kathmandu to explore Nepali cuisine for his upcoming documentary on Asian food culture",
		Source:   "celebrity_news",
		Language: "English",
		Category: "food",
		Keywords: []string{"gordon ramsay", "kathmandu", "nepali cuisine", "documentary", "asian food"},
	},
	{
		ID:       "N049",
		Label:    domain.LabelNotPolicy,
		Text:     "नेपाली फुटबल टोलीले साफ च्याम्पियनशिपमा भारतलाई २-१ ले पराजित गर्दै इतिहास रच्यो",
		Source:   "sports_news",
		Language: "Nepali",
		Category: "sports",
		Keywords: []string{"फुटबल टोली", "साफ च्याम्पियनशिप", "भारतलाई", "इतिहास रच्यो"},
	},
	{
		ID:       "N050",
		Label:    domain.LabelNotPolicy,
		Text:     "काठमाडौंको नयाँ बसपार्कमा आधुनिक सुविधासहित यात्रु सेवा सुरु भएको छ",
		Source:   "transport_news",
		Language: "Nepali",
		Category: "transport",
		Keywords: []string{"काठमाडौंको", "बसपार्क", "आधुनिक सुविधा", "यात्रु सेवा"},
	},
}
